package deck

// Kind identifies the variant of a slide
type Kind string

const (
	KindIntro Kind = "intro"
	KindStat  Kind = "stat"
	KindPhoto Kind = "photo"
	KindText  Kind = "text"
	KindOutro Kind = "outro"
)

// Slide is one content panel of the deck. The concrete types are
// Intro, Stat, Photo, Text and Outro.
type Slide interface {
	Kind() Kind
}

// Intro opens the deck
type Intro struct {
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

// Stat shows a single number with an entrance counter
type Stat struct {
	Icon    string `yaml:"icon" json:"icon"`
	Label   string `yaml:"label" json:"label"`
	Value   string `yaml:"value" json:"value"` // may contain thousands separators
	Unit    string `yaml:"unit" json:"unit"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Photo shows an image reference with a caption
type Photo struct {
	Source  string `yaml:"src" json:"src"`
	Caption string `yaml:"caption" json:"caption"`
}

// Text shows a block of prose
type Text struct {
	Content string `yaml:"content" json:"content"`
}

// Outro closes the deck
type Outro struct {
	Thanks  string `yaml:"thanks" json:"thanks"`
	Message string `yaml:"message" json:"message"`
}

func (Intro) Kind() Kind { return KindIntro }
func (Stat) Kind() Kind  { return KindStat }
func (Photo) Kind() Kind { return KindPhoto }
func (Text) Kind() Kind  { return KindText }
func (Outro) Kind() Kind { return KindOutro }

// Heading returns the subtitle, falling back to the title when unset
func (i Intro) Heading() string {
	if i.Subtitle != "" {
		return i.Subtitle
	}
	return i.Title
}

// Target returns the numeric value of the stat, if it has one
func (s Stat) Target() (int, bool) {
	return ParseStatValue(s.Value)
}
