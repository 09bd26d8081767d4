package core

import "time"

type Label struct {
	ID      string `json:"id"`
	IDBoard string `json:"idBoard,omitempty"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

// Card mirrors the subset of the Trello card resource this package reads.
type Card struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Desc             string     `json:"desc"`
	Closed           bool       `json:"closed"`
	IDBoard          string     `json:"idBoard"`
	IDList           string     `json:"idList"`
	IDMembers        []string   `json:"idMembers"`
	IDLabels         []string   `json:"idLabels"`
	Labels           []Label    `json:"labels"`
	Pos              float64    `json:"pos"`
	Due              *time.Time `json:"due"`
	DueComplete      bool       `json:"dueComplete"`
	URL              string     `json:"url"`
	ShortURL         string     `json:"shortUrl"`
	ShortLink        string     `json:"shortLink"`
	DateLastActivity *time.Time `json:"dateLastActivity"`
}

type Member struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	FullName   string   `json:"fullName"`
	Initials   string   `json:"initials"`
	AvatarURL  string   `json:"avatarUrl"`
	URL        string   `json:"url"`
	MemberType string   `json:"memberType"`
	IDBoards   []string `json:"idBoards"`
}

type Board struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Desc           string `json:"desc"`
	Closed         bool   `json:"closed"`
	IDOrganization string `json:"idOrganization"`
	URL            string `json:"url"`
	ShortURL       string `json:"shortUrl"`
}
