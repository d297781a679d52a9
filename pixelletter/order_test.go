package pixelletter

import (
	"testing"

	"github.com/biter777/countries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-pixelletter-client/pixelletter/api"
	"github.com/alapierre/go-pixelletter-client/pixelletter/model"
)

func pdf() []api.Attachment {
	return []api.Attachment{{Filename: "letter.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}}
}

func TestOrder_NoDeliveryChannel(t *testing.T) {

	request := OrderRequest{Files: pdf()}
	_, err := request.order()
	assert.ErrorIs(t, err, ErrNoDeliveryChannel)
}

func TestOrder_AmbiguousContent(t *testing.T) {

	// Both kinds of content.
	request := OrderRequest{
		Letter: &Letter{Destination: countries.Germany},
		Files:  pdf(),
		Text:   &Text{Address: "a", Message: "m"},
	}
	_, err := request.order()
	assert.ErrorIs(t, err, ErrAmbiguousContent)

	// No content at all.
	request = OrderRequest{Fax: "+49 89 1234567"}
	_, err = request.order()
	assert.ErrorIs(t, err, ErrAmbiguousContent)
}

func TestOrder_EmptyFilesIsDistinctFromOmitted(t *testing.T) {

	request := OrderRequest{
		Letter: &Letter{Destination: countries.Germany},
		Files:  []api.Attachment{},
	}
	_, err := request.order()
	assert.ErrorIs(t, err, ErrEmptyFiles)
}

func TestOrder_LetterUpload(t *testing.T) {

	location := model.LocationHamburg
	request := OrderRequest{
		Letter: &Letter{
			Destination: countries.Germany,
			Location:    &location,
			Services:    []model.AddOption{model.AddOptionEinschreiben},
		},
		Files: pdf(),
	}

	order, err := request.order()
	require.NoError(t, err)

	assert.Equal(t, model.ActionLetter, order.Options.Action)
	assert.Equal(t, model.ContentUpload, order.Type)
	require.NotNil(t, order.Options.Destination)
	assert.Equal(t, "DE", *order.Options.Destination)
	assert.Equal(t, &location, order.Options.Location)
	assert.Equal(t, model.AddOptionList{model.AddOptionEinschreiben}, order.Options.AddOptions)
	assert.Nil(t, order.Options.Fax)
	assert.Nil(t, order.Text)
	// Return address is meaningless for uploads and stays empty.
	assert.Equal(t, "", order.Options.Returnaddress)
}

func TestOrder_FaxOnlyText(t *testing.T) {

	request := OrderRequest{
		Fax: "+49 89 1234567",
		Text: &Text{
			Address:       "Erika Mustermann",
			Message:       "Guten Tag",
			Font:          "Courier",
			ReturnAddress: "Max Mustermann",
		},
		Transaction: "tx-1",
	}

	order, err := request.order()
	require.NoError(t, err)

	assert.Equal(t, model.ActionFax, order.Options.Action)
	assert.Equal(t, model.ContentText, order.Type)
	require.NotNil(t, order.Options.Fax)
	assert.Equal(t, "+49 89 1234567", *order.Options.Fax)
	require.NotNil(t, order.Options.Transaction)
	assert.Equal(t, "tx-1", *order.Options.Transaction)
	require.NotNil(t, order.Options.Font)
	assert.Equal(t, "Courier", *order.Options.Font)
	assert.Equal(t, "Max Mustermann", order.Options.Returnaddress)
	require.NotNil(t, order.Text)
	assert.Equal(t, "Erika Mustermann", order.Text.Address)
	assert.Equal(t, "Guten Tag", order.Text.Message)
	assert.Nil(t, order.Options.Destination)
}

func TestOrder_LetterAndFax(t *testing.T) {

	request := OrderRequest{
		Letter: &Letter{Destination: countries.Austria},
		Fax:    "+43 1 234567",
		Text:   &Text{Address: "a", Message: "m"},
	}

	order, err := request.order()
	require.NoError(t, err)

	assert.Equal(t, model.ActionLetterAndFax, order.Options.Action)
	assert.Equal(t, model.ContentText, order.Type)
	require.NotNil(t, order.Options.Destination)
	assert.Equal(t, "AT", *order.Options.Destination)
}

func TestOrder_UnknownDestinationStaysUnset(t *testing.T) {

	request := OrderRequest{
		Letter: &Letter{},
		Files:  pdf(),
	}

	order, err := request.order()
	require.NoError(t, err)
	assert.Nil(t, order.Options.Destination)
}

func TestDeriveAction(t *testing.T) {

	assert.Equal(t, model.ActionLetter, deriveAction(true, false))
	assert.Equal(t, model.ActionFax, deriveAction(false, true))
	assert.Equal(t, model.ActionLetterAndFax, deriveAction(true, true))
}

func TestDeriveContentType(t *testing.T) {

	assert.Equal(t, model.ContentUpload, deriveContentType(true))
	assert.Equal(t, model.ContentText, deriveContentType(false))
}
