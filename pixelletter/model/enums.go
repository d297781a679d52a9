package model

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Action selects the delivery channel of an order. The gateway expects
// the numeric value, not a symbolic name.
type Action int

const (
	ActionLetter       Action = 1
	ActionFax          Action = 2
	ActionLetterAndFax Action = 3
)

// ParseAction maps a wire integer to an Action. Unknown values are a
// decode error, never a default.
func ParseAction(v int) (Action, error) {
	switch Action(v) {
	case ActionLetter, ActionFax, ActionLetterAndFax:
		return Action(v), nil
	}
	return 0, errors.Errorf("invalid action value %d", v)
}

func (a Action) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(int(a), start)
}

func (a *Action) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v int
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	parsed, err := ParseAction(v)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Location is the physical dispatch site for letters.
type Location int

const (
	LocationMuenchen   Location = 1
	LocationHausleiten Location = 2
	LocationHamburg    Location = 3
)

func ParseLocation(v int) (Location, error) {
	switch Location(v) {
	case LocationMuenchen, LocationHausleiten, LocationHamburg:
		return Location(v), nil
	}
	return 0, errors.Errorf("invalid location value %d", v)
}

func (l Location) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(int(l), start)
}

func (l *Location) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v int
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	parsed, err := ParseLocation(v)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// AddOption is an optional delivery enhancement. The vocabulary is sparse;
// the codes sit next to unrelated gateway values and must be looked up
// individually, never treated as a range.
type AddOption int

const (
	AddOptionEinschreiben        AddOption = 27
	AddOptionRueckschein         AddOption = 28
	AddOptionEigenhaendig        AddOption = 29
	AddOptionEinschreibenEinwurf AddOption = 30
	AddOptionColor               AddOption = 33
	AddOptionGreen               AddOption = 44
)

// ParseAddOption is the strict scalar lookup. The lenient drop-unknown
// behaviour lives only in AddOptionList.UnmarshalXML.
func ParseAddOption(v int) (AddOption, error) {
	switch AddOption(v) {
	case AddOptionEinschreiben, AddOptionRueckschein, AddOptionEigenhaendig,
		AddOptionEinschreibenEinwurf, AddOptionColor, AddOptionGreen:
		return AddOption(v), nil
	}
	return 0, errors.Errorf("invalid addoption value %d", v)
}

// AddOptionList is carried on the wire as a single comma-joined decimal
// list, e.g. "27,33".
type AddOptionList []AddOption

func (l AddOptionList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if len(l) == 0 {
		return nil
	}
	parts := make([]string, len(l))
	for i, o := range l {
		parts[i] = strconv.Itoa(int(o))
	}
	return e.EncodeElement(strings.Join(parts, ","), start)
}

// UnmarshalXML splits on commas and drops tokens that do not parse or are
// not in the vocabulary. A bad token must not fail the whole list.
func (l *AddOptionList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	var out AddOptionList
	for _, token := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		o, err := ParseAddOption(v)
		if err != nil {
			continue
		}
		out = append(out, o)
	}
	*l = out
	return nil
}

// YesNo encodes a consent flag the way the gateway wants it: "ja" or
// "nein", never a boolean literal. Only agb and widerrufsverzicht use
// this encoding; testmodus stays a plain bool.
type YesNo bool

func (b YesNo) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	s := "nein"
	if b {
		s = "ja"
	}
	return e.EncodeElement(s, start)
}

func (b *YesNo) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	switch s {
	case "ja":
		*b = true
	case "nein":
		*b = false
	default:
		return errors.Errorf("expected 'ja' or 'nein', got %q", s)
	}
	return nil
}

// ContentType discriminates how the order content is delivered.
type ContentType string

const (
	ContentUpload ContentType = "upload"
	ContentText   ContentType = "text"
)
