// Package entity defines the core domain entities and validation logic for the application.
// It contains the value objects exchanged with the content store and the email alert API,
// such as ContentItem, Subscriber and Subscription, along with domain-specific errors.
package entity

// DocumentTypeRedirect marks a content item that only points somewhere else.
const DocumentTypeRedirect = "redirect"

// DocumentTypeTaxon marks a node of the topic taxonomy.
const DocumentTypeTaxon = "taxon"

// ContentItem is a read-only document returned by the content store for a base path.
type ContentItem struct {
	ContentID    string           `json:"content_id"`
	Title        string           `json:"title"`
	DocumentType string           `json:"document_type"`
	BasePath     string           `json:"base_path"`
	Redirects    []Redirect       `json:"redirects"`
	Links        ContentItemLinks `json:"links"`
}

// Redirect is a single redirect route of a redirect content item.
type Redirect struct {
	Path        string `json:"path"`
	Destination string `json:"destination"`
}

// ContentItemLinks holds the expanded links the signup flow cares about.
type ContentItemLinks struct {
	ChildTaxons []LinkedItem `json:"child_taxons,omitempty"`
}

// LinkedItem is a summary of another content item referenced through a link.
type LinkedItem struct {
	ContentID string `json:"content_id"`
	Title     string `json:"title"`
	BasePath  string `json:"base_path"`
}

// IsRedirect reports whether the item only redirects to another path.
func (c *ContentItem) IsRedirect() bool {
	return c.DocumentType == DocumentTypeRedirect
}

// RedirectDestination returns the destination of the first redirect route.
// ok is false when the item has no redirect routes or the first one has no destination.
func (c *ContentItem) RedirectDestination() (destination string, ok bool) {
	if len(c.Redirects) == 0 || c.Redirects[0].Destination == "" {
		return "", false
	}
	return c.Redirects[0].Destination, true
}

// HasChildTaxons reports whether the item is a taxon with narrower topics below it.
func (c *ContentItem) HasChildTaxons() bool {
	return c.DocumentType == DocumentTypeTaxon && len(c.Links.ChildTaxons) > 0
}
