// Package notion talks to the Notion API through github.com/jomei/notionapi.
// It creates the events database and adds one page per event.
package notion

import (
	"context"
	"net/http"

	"github.com/jomei/notionapi"

	"github.com/ib-77/bevy-notion/internal/event"
)

// Property names of the events database schema.
const (
	PropertyTitle   = "Title"
	PropertyDate    = "Date"
	PropertyChapter = "Chapter"
)

// Operation names used in failure reports.
const (
	OpCreateDatabase = "databases.create"
	OpCreatePage     = "pages.create"
)

// Entry is the page created for an event.
type Entry struct {
	ID  string
	URL string
}

type Client struct {
	api *notionapi.Client
}

// NewClient builds a client for token. httpClient may be nil, in which case
// the library default is used.
func NewClient(token string, httpClient *http.Client) *Client {
	var opts []notionapi.ClientOption
	if httpClient != nil {
		opts = append(opts, notionapi.WithHTTPClient(httpClient))
	}
	return &Client{api: notionapi.NewClient(notionapi.Token(token), opts...)}
}

// CreateDatabase creates a database titled title under the page parentID
// with the Title/Date/Chapter schema and returns its id.
func (c *Client) CreateDatabase(ctx context.Context, parentID, title string) (string, error) {
	db, err := c.api.Database.Create(ctx, &notionapi.DatabaseCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(parentID),
		},
		Title: text(title),
		Properties: notionapi.PropertyConfigs{
			PropertyTitle:   notionapi.TitlePropertyConfig{Type: notionapi.PropertyConfigTypeTitle},
			PropertyDate:    notionapi.DatePropertyConfig{Type: notionapi.PropertyConfigTypeDate},
			PropertyChapter: notionapi.RichTextPropertyConfig{Type: notionapi.PropertyConfigTypeRichText},
		},
	})
	if err != nil {
		return "", err
	}
	return db.ID.String(), nil
}

// CreateEntry adds ev as a page of databaseID. The date keeps the event's
// UTC offset.
func (c *Client) CreateEntry(ctx context.Context, databaseID string, ev event.Event) (Entry, error) {
	start := notionapi.Date(ev.Date)
	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: notionapi.Properties{
			PropertyTitle: notionapi.TitleProperty{
				Type:  notionapi.PropertyTypeTitle,
				Title: text(ev.Title),
			},
			PropertyDate: notionapi.DateProperty{
				Type: notionapi.PropertyTypeDate,
				Date: &notionapi.DateObject{Start: &start},
			},
			// TODO: make Chapter a relation to a chapters database once one exists.
			PropertyChapter: notionapi.RichTextProperty{
				Type:     notionapi.PropertyTypeRichText,
				RichText: text(ev.Chapter.Name),
			},
		},
	})
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: page.ID.String(), URL: page.URL}, nil
}

func text(content string) []notionapi.RichText {
	return []notionapi.RichText{{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}}
}
