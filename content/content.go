// Package content describes the documents fitplayer can show: videos, images and posts.
//
// Item is closed. Every consumer dispatches through a Visitor, so adding a kind
// fails to compile until each consumer handles it.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownType is returned when a document carries a type tag outside Kinds.
var ErrUnknownType = errors.New("unknown content type")

// Kind is the type tag of a document.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
	KindPost  Kind = "post"
)

// Kinds lists every known document type in a stable order.
var Kinds = []Kind{KindVideo, KindImage, KindPost}

// Item is one content document.
type Item interface {
	Kind() Kind
	Accept(v Visitor) error

	sealed()
}

// Visitor has one method per kind.
type Visitor interface {
	Video(v *Video) error
	Image(i *Image) error
	Post(p *Post) error
}

type Video struct {
	Type      Kind   `json:"type" validate:"required,eq=video" jsonschema:"enum=video"`
	Title     string `json:"title" validate:"required,max=200" jsonschema:"description=Title shown on the poster and above the progress bar."`
	URL       string `json:"url" validate:"required" jsonschema:"description=Media URL or local path handed to the player."`
	Thumbnail string `json:"thumbnail,omitempty" jsonschema:"description=Poster image shown before playback starts."`

	Autoplay bool `json:"autoplay,omitempty" jsonschema:"description=Start playing as soon as the media is ready."`
	Muted    bool `json:"muted,omitempty"`
	Loop     bool `json:"loop,omitempty"`

	QualityOptions []string `json:"qualityOptions,omitempty" validate:"omitempty,dive,required" jsonschema:"description=Quality labels offered in the settings menu."`
}

func (*Video) Kind() Kind                 { return KindVideo }
func (v *Video) Accept(vis Visitor) error { return vis.Video(v) }
func (*Video) sealed()                    {}

type Image struct {
	Type  Kind   `json:"type" validate:"required,eq=image" jsonschema:"enum=image"`
	Title string `json:"title,omitempty" validate:"max=200"`
	URL   string `json:"url" validate:"required" jsonschema:"description=Image URL or local path opened with the system viewer."`
	Alt   string `json:"alt,omitempty"`
}

func (*Image) Kind() Kind                 { return KindImage }
func (i *Image) Accept(vis Visitor) error { return vis.Image(i) }
func (*Image) sealed()                    {}

type Post struct {
	Type   Kind   `json:"type" validate:"required,eq=post" jsonschema:"enum=post"`
	Title  string `json:"title" validate:"required,max=200"`
	Author string `json:"author,omitempty"`
	Body   string `json:"body" validate:"required" jsonschema:"description=Plain text body. Paragraphs are separated by blank lines."`
}

func (*Post) Kind() Kind                 { return KindPost }
func (p *Post) Accept(vis Visitor) error { return vis.Post(p) }
func (*Post) sealed()                    {}

// New returns an empty item of the given kind.
func New(kind Kind) (Item, error) {
	switch kind {
	case KindVideo:
		return &Video{Type: kind}, nil
	case KindImage:
		return &Image{Type: kind}, nil
	case KindPost:
		return &Post{Type: kind}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, kind)
	}
}

// Decode reads a single JSON document, picks its variant from the type tag and validates it.
func Decode(r io.Reader) (Item, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Type Kind `json:"type"`
	}

	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	item, err := New(envelope.Type)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(item); err != nil {
		return nil, fmt.Errorf("decode %s: %w", envelope.Type, err)
	}

	if err := Validate(item); err != nil {
		return nil, err
	}

	return item, nil
}
