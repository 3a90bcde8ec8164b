package cw20

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LogoSizeCap is the maximum size of an embedded logo.
const LogoSizeCap = 5 * 1024

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// Logo is either a url or an embedded image.
type Logo struct {
	Url      *string       `json:"url,omitempty"`
	Embedded *EmbeddedLogo `json:"embedded,omitempty"`
}

// EmbeddedLogo holds exactly one of an SVG document or a PNG image.
type EmbeddedLogo struct {
	Svg []byte `json:"svg,omitempty"`
	Png []byte `json:"png,omitempty"`
}

func (l *Logo) UnmarshalJSON(input []byte) error {
	var dec struct {
		Url      *string       `json:"url"`
		Embedded *EmbeddedLogo `json:"embedded"`
	}
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if (dec.Url == nil) == (dec.Embedded == nil) {
		return ErrInvalidLogo
	}
	*l = Logo{Url: dec.Url, Embedded: dec.Embedded}
	return nil
}

func (e *EmbeddedLogo) UnmarshalJSON(input []byte) error {
	var dec struct {
		Svg *[]byte `json:"svg"`
		Png *[]byte `json:"png"`
	}
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if (dec.Svg == nil) == (dec.Png == nil) {
		return ErrInvalidLogo
	}
	*e = EmbeddedLogo{}
	if dec.Svg != nil {
		e.Svg = *dec.Svg
	} else {
		e.Png = *dec.Png
	}
	return nil
}

func UrlLogo(url string) Logo {
	return Logo{Url: &url}
}

func SvgLogo(data []byte) Logo {
	return Logo{Embedded: &EmbeddedLogo{Svg: data}}
}

func PngLogo(data []byte) Logo {
	return Logo{Embedded: &EmbeddedLogo{Png: data}}
}

func verifyXmlPreamble(data []byte) error {
	end := bytes.IndexByte(data, '>')
	if end < 0 {
		return ErrInvalidXmlPreamble
	}
	preamble := data[:end+1]
	if !bytes.HasPrefix(preamble, []byte("<?xml ")) || !bytes.HasSuffix(preamble, []byte("?>")) {
		return ErrInvalidXmlPreamble
	}
	return nil
}

func verifyXmlLogo(logo []byte) error {
	if err := verifyXmlPreamble(logo); err != nil {
		return err
	}
	if len(logo) > LogoSizeCap {
		return ErrLogoTooBig
	}
	return nil
}

func verifyPngLogo(logo []byte) error {
	if len(logo) > LogoSizeCap {
		return ErrLogoTooBig
	}
	if !bytes.HasPrefix(logo, pngHeader) {
		return ErrInvalidPngHeader
	}
	return nil
}

func verifyLogo(logo *Logo) error {
	if (logo.Url == nil) == (logo.Embedded == nil) {
		return ErrInvalidLogo
	}
	if logo.Embedded == nil {
		return nil
	}
	if logo.Embedded.Svg != nil {
		if logo.Embedded.Png != nil {
			return ErrInvalidLogo
		}
		return verifyXmlLogo(logo.Embedded.Svg)
	}
	return verifyPngLogo(logo.Embedded.Png)
}

// LogoInfo is the public view of the stored logo: its url, or a marker that it is embedded.
type LogoInfo struct {
	Url      string
	Embedded bool
}

func logoInfoOf(logo *Logo) *LogoInfo {
	if logo.Url != nil {
		return &LogoInfo{Url: *logo.Url}
	}
	return &LogoInfo{Embedded: true}
}

func (l LogoInfo) MarshalJSON() ([]byte, error) {
	if l.Embedded {
		return json.Marshal("embedded")
	}
	return json.Marshal(map[string]string{"url": l.Url})
}

func (l *LogoInfo) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err == nil {
		if s != "embedded" {
			return fmt.Errorf("unknown logo info %q", s)
		}
		*l = LogoInfo{Embedded: true}
		return nil
	}
	var u struct {
		Url *string `json:"url"`
	}
	if err := json.Unmarshal(input, &u); err != nil {
		return err
	}
	if u.Url == nil {
		return fmt.Errorf("logo info must be a url or \"embedded\"")
	}
	*l = LogoInfo{Url: *u.Url}
	return nil
}
