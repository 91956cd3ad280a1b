package deck

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Descriptor is the declarative form of a slide as it appears in
// configuration: a "type" tag plus the fields of that variant.
type Descriptor struct {
	Type  Kind
	Slide Slide
}

// NewDescriptor wraps a slide for serialization
func NewDescriptor(s Slide) Descriptor {
	return Descriptor{Type: s.Kind(), Slide: s}
}

// UnmarshalYAML decodes the variant named by the "type" field. An unknown
// type leaves Slide nil; FromDescriptors turns that into a
// ConfigurationError that names the slide index.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Type Kind `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	d.Type = head.Type
	d.Slide = nil

	var err error
	switch head.Type {
	case KindIntro:
		var s Intro
		err = node.Decode(&s)
		d.Slide = s
	case KindStat:
		var s Stat
		err = node.Decode(&s)
		d.Slide = s
	case KindPhoto:
		var s Photo
		err = node.Decode(&s)
		d.Slide = s
	case KindText:
		var s Text
		err = node.Decode(&s)
		d.Slide = s
	case KindOutro:
		var s Outro
		err = node.Decode(&s)
		d.Slide = s
	}
	return err
}

// MarshalYAML writes the slide fields inline next to the "type" tag
func (d Descriptor) MarshalYAML() (interface{}, error) {
	return d.tagged()
}

// MarshalJSON writes the slide fields next to the "type" tag
func (d Descriptor) MarshalJSON() ([]byte, error) {
	v, err := d.tagged()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (d Descriptor) tagged() (interface{}, error) {
	switch s := d.Slide.(type) {
	case Intro:
		return struct {
			Type  Kind `yaml:"type" json:"type"`
			Intro `yaml:",inline"`
		}{KindIntro, s}, nil
	case Stat:
		return struct {
			Type Kind `yaml:"type" json:"type"`
			Stat `yaml:",inline"`
		}{KindStat, s}, nil
	case Photo:
		return struct {
			Type  Kind `yaml:"type" json:"type"`
			Photo `yaml:",inline"`
		}{KindPhoto, s}, nil
	case Text:
		return struct {
			Type Kind `yaml:"type" json:"type"`
			Text `yaml:",inline"`
		}{KindText, s}, nil
	case Outro:
		return struct {
			Type  Kind `yaml:"type" json:"type"`
			Outro `yaml:",inline"`
		}{KindOutro, s}, nil
	default:
		return nil, fmt.Errorf("cannot serialize slide of type %q", d.Type)
	}
}

// FromDescriptors builds a deck from configuration descriptors
func FromDescriptors(descs []Descriptor) (*Deck, error) {
	slides := make([]Slide, 0, len(descs))
	for i, d := range descs {
		if d.Slide == nil {
			msg := fmt.Sprintf("unknown slide type %q (must be one of: intro, stat, photo, text, outro)", d.Type)
			if d.Type == "" {
				msg = "slide type is required"
			}
			return nil, newConfigurationError(i, msg, nil)
		}
		slides = append(slides, d.Slide)
	}
	return Build(slides)
}
