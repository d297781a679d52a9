package pixelletter

import (
	"github.com/biter777/countries"

	"github.com/alapierre/go-pixelletter-client/pixelletter/api"
	"github.com/alapierre/go-pixelletter-client/pixelletter/model"
)

// Letter describes the postal leg of an order.
type Letter struct {
	// Destination is the receiver country. countries.Unknown leaves the
	// destination unset.
	Destination countries.CountryCode
	// Location optionally pins the dispatch site.
	Location *model.Location
	// Services are the requested delivery add-ons.
	Services []model.AddOption
}

// Text is typed letter content, rendered by the gateway.
type Text struct {
	Address string
	Message string
	Font    string
	// ReturnAddress is printed as the sender line; the gateway requires
	// it for text orders.
	ReturnAddress string
}

// OrderRequest is the permissive input stage of an order. Which fields
// are set decides the delivery channel and content type; contradictory
// combinations are rejected by order() before anything is serialized.
type OrderRequest struct {
	Letter *Letter
	// Fax is the receiver fax number; empty means no fax delivery.
	Fax string
	// Files are uploaded attachments. nil means no upload content; a
	// non-nil empty slice is an error, not an omission.
	Files []api.Attachment
	Text  *Text
	// Transaction is an optional caller-chosen id echoed by the gateway.
	Transaction string
}

// deriveAction infers the delivery channel from which inputs are present.
// Callers never choose the action directly.
func deriveAction(hasLetter, hasFax bool) model.Action {
	switch {
	case hasLetter && hasFax:
		return model.ActionLetterAndFax
	case hasFax:
		return model.ActionFax
	default:
		return model.ActionLetter
	}
}

func deriveContentType(hasFiles bool) model.ContentType {
	if hasFiles {
		return model.ContentUpload
	}
	return model.ContentText
}

// order validates the request and folds it into the wire record.
// The first failing rule wins.
func (r *OrderRequest) order() (*model.Order, error) {
	hasLetter := r.Letter != nil
	hasFax := r.Fax != ""
	if !hasLetter && !hasFax {
		return nil, ErrNoDeliveryChannel
	}

	hasFiles := r.Files != nil
	hasText := r.Text != nil
	if hasFiles == hasText {
		return nil, ErrAmbiguousContent
	}
	if hasFiles && len(r.Files) == 0 {
		return nil, ErrEmptyFiles
	}

	opts := model.Options{
		Action:      deriveAction(hasLetter, hasFax),
		Transaction: optional(r.Transaction),
		Fax:         optional(r.Fax),
	}

	if hasLetter {
		if r.Letter.Destination != countries.Unknown {
			opts.Destination = optional(r.Letter.Destination.Alpha2())
		}
		opts.Location = r.Letter.Location
		opts.AddOptions = model.AddOptionList(r.Letter.Services)
	}

	if hasText {
		opts.Font = optional(r.Text.Font)
		opts.Returnaddress = r.Text.ReturnAddress
	}

	o := &model.Order{
		Type:    deriveContentType(hasFiles),
		Options: opts,
	}
	if hasText {
		o.Text = &model.Text{Address: r.Text.Address, Message: r.Text.Message}
	}
	return o, nil
}
