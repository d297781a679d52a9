// Package model holds the wire records of the Pixelletter XML protocol.
// Field names and placement (attribute vs. element) follow the gateway
// contract exactly; every optional field is a pointer and is absent from
// the serialized document when nil.
package model

import (
	"encoding/xml"

	"github.com/go-faster/errors"
)

// Header is the fixed declaration the gateway expects in front of every
// request document.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// Version is the protocol version spoken by this client.
const Version = "1.3"

// Envelope is the <pixelletter> root record. Only the fields relevant to
// the current operation are populated.
type Envelope struct {
	XMLName xml.Name `xml:"pixelletter"`
	Version string   `xml:"version,attr"`

	Auth     *Auth     `xml:"auth,omitempty"`
	Command  *Command  `xml:"command,omitempty"`
	Response *Response `xml:"response,omitempty"`

	CustomerID     *string         `xml:"id,omitempty"`
	CustomerData   *CustomerData   `xml:"data,omitempty"`
	CustomerCredit *CustomerCredit `xml:"credit,omitempty"`
}

// Marshal serializes the envelope with the fixed XML declaration in front.
func (e *Envelope) Marshal() ([]byte, error) {
	body, err := xml.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, "marshal envelope")
	}
	return append([]byte(Header), body...), nil
}

// Unmarshal decodes a gateway document into an Envelope.
func Unmarshal(data []byte) (*Envelope, error) {
	var e Envelope
	if err := xml.Unmarshal(data, &e); err != nil {
		return nil, errors.Wrap(err, "unmarshal envelope")
	}
	return &e, nil
}

// Auth carries the account credentials inside the request body. The two
// consent flags use the ja/nein token encoding, testmodus does not.
type Auth struct {
	Email             string  `xml:"email"`
	Password          string  `xml:"password"`
	AGB               YesNo   `xml:"agb"`
	Widerrufsverzicht YesNo   `xml:"widerrufsverzicht"`
	Testmodus         bool    `xml:"testmodus"`
	Ref               *string `xml:"ref,omitempty"`
}

// Command holds exactly one meaningful payload: an order submission or an
// account info request.
type Command struct {
	Order *Order  `xml:"order,omitempty"`
	Info  *Info   `xml:"info,omitempty"`
	ID    *string `xml:"id,omitempty"`
}

// Order is an outbound submission. Type discriminates between uploaded
// attachments and typed text; Text is present only for text orders.
type Order struct {
	Type    ContentType `xml:"type,attr"`
	Options Options     `xml:"options"`
	Text    *Text       `xml:"text,omitempty"`
}

// Options is the full set of delivery parameters. Control is reserved and
// always sent empty; Returnaddress is always sent and only meaningful for
// text orders.
type Options struct {
	Action        Action        `xml:"action"`
	Transaction   *string       `xml:"transaction,omitempty"`
	Control       string        `xml:"control"`
	Fax           *string       `xml:"fax,omitempty"`
	Location      *Location     `xml:"location,omitempty"`
	Destination   *string       `xml:"destination,omitempty"`
	AddOptions    AddOptionList `xml:"addoption,omitempty"`
	Font          *string       `xml:"font,omitempty"`
	Returnaddress string        `xml:"returnaddress"`
}

// Text is the addressee block and message body of a text order.
type Text struct {
	Address string `xml:"address"`
	Message string `xml:"message"`
}

// Info is an account query. The gateway expects the nested element under
// the "account" prefix but answers without it, and encoding/xml does not
// resolve foreign prefixes on decode, so both directions are handled
// explicitly here.
type Info struct {
	AccountInfo AccountInfo
}

func (i Info) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	child := xml.StartElement{Name: xml.Name{Local: "account:info"}}
	if err := e.EncodeElement(i.AccountInfo, child); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

func (i *Info) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			// Matches <info> as well as <account:info>: an unbound
			// prefix ends up in Name.Space, not Name.Local.
			if t.Name.Local == "info" {
				if err := d.DecodeElement(&i.AccountInfo, &t); err != nil {
					return err
				}
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// AccountInfo names which account record the info command asks for.
type AccountInfo struct {
	Type string `xml:"type,attr"`
}

// Response is the gateway's answer to any command.
type Response struct {
	Result      Result  `xml:"result"`
	Transaction *string `xml:"transaction,omitempty"`
}

// Result carries the numeric outcome. Code 100 means success, everything
// else resolves through the codes package.
type Result struct {
	Code int    `xml:"code,attr"`
	Msg  string `xml:"msg"`
}

// CustomerData is the account holder record returned by an info command.
type CustomerData struct {
	Company     string `xml:"company"`
	Sex         string `xml:"sex"`
	Title       string `xml:"title"`
	Firstname   string `xml:"firstname"`
	Lastname    string `xml:"lastname"`
	Street      string `xml:"street"`
	Pcode       string `xml:"pcode"`
	City        string `xml:"city"`
	Country     string `xml:"country"`
	Tel         *Phone `xml:"tel,omitempty"`
	Fax         *Phone `xml:"fax,omitempty"`
	Mobil       *Phone `xml:"mobil,omitempty"`
	Email       string `xml:"email"`
	PaymentType string `xml:"type"`
}

// Phone is a dialing prefix and the local number.
type Phone struct {
	Prefix string `xml:"prefix"`
	Number string `xml:"number"`
}

// CustomerCredit is the account balance; the currency rides as an
// attribute on the wire.
type CustomerCredit struct {
	Currency string `xml:"currency,attr"`
	Amount   string `xml:",chardata"`
}
