package roslyn

import (
	"encoding/xml"
	stderrors "errors"
	"io"
	"strings"

	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

const resourcesSource = "CSharpResources.resx"

// resxState tracks where the scanner is relative to a data/value pair.
type resxState int

const (
	stateIdle resxState = iota
	stateHaveName
	stateInValue
)

// ParseResources extracts the name to message mapping from a .resx localization document.
// A value element that is still open when the input ends is dropped.
func ParseResources(r io.Reader) (map[string]string, error) {
	messages := make(map[string]string)
	decoder := xml.NewDecoder(r)

	var (
		state resxState
		name  string
		text  strings.Builder
	)
	for {
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF || isUnexpectedEOF(err) {
				return messages, nil
			}
			line, _ := decoder.InputPos()
			return nil, errors.NewFormatErrorAt(resourcesSource, line, "malformed document", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "data":
				if attrName, ok := nameAttr(t); ok {
					name = attrName
					state = stateHaveName
				}
			case "value":
				if state == stateHaveName {
					state = stateInValue
					text.Reset()
				}
			}
		case xml.CharData:
			if state == stateInValue {
				text.WriteString(strings.TrimSpace(string(t)))
			}
		case xml.EndElement:
			if state == stateInValue && t.Name.Local == "value" {
				messages[name] = text.String()
				state = stateIdle
			}
		}
	}
}

func nameAttr(el xml.StartElement) (string, bool) {
	for _, attr := range el.Attr {
		if attr.Name.Local == "name" && attr.Name.Space == "" {
			return attr.Value, true
		}
	}
	return "", false
}

// isUnexpectedEOF reports whether err means the document was cut off.
func isUnexpectedEOF(err error) bool {
	if stderrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var syntaxErr *xml.SyntaxError
	return stderrors.As(err, &syntaxErr) && syntaxErr.Msg == "unexpected EOF"
}
