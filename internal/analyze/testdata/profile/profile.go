package profile

import (
	htmltemplate "html/template"
	"net/url"
	"text/template"
	"time"

	"partial-generator/examples/account"
)

type Audit struct {
	UpdatedBy string
}

type Profile struct {
	Audit

	Owner    *account.Account  `json:"owner"`
	Homepage *url.URL          `json:"homepage,omitempty"`
	Labels   map[string]string `json:"labels"`
	Timezone string            `json:"tz"`
	Internal string            `json:"-"`
	Deleted  bool              `json:"deleted" partial:"-"`
	LastSeen *time.Time

	cache map[string]string
}

type Pair[T any] struct {
	Left, Right T
}

type Alias = Audit

type Level int

const DefaultLevel Level = 1

type Clash struct {
	Name  string `json:"name"`
	Label string `json:"name"`
}

type Templates struct {
	Text  *template.Template
	HTML  *htmltemplate.Template
	Pages map[string]*htmltemplate.Template
}
