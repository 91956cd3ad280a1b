package config

import "github.com/yildizm/recap/internal/deck"

// DefaultSlides returns the built-in year-in-review deck
func DefaultSlides() []deck.Descriptor {
	slides := []deck.Slide{
		deck.Intro{Title: "Year in Review", Subtitle: "Looking back on every moment of the year"},
		deck.Stat{Icon: "📚", Label: "This year we read", Value: "10,000,000", Unit: "words of papers", Comment: "About a hundred classic novels!"},
		deck.Stat{Icon: "☕", Label: "For science, we drank", Value: "2,048", Unit: "cups of coffee", Comment: "Caffeine is the first productive force"},
		deck.Stat{Icon: "💻", Label: "We typed", Value: "128,512", Unit: "lines of code", Comment: "Every bug is a footprint of growth"},
		deck.Stat{Icon: "🌙", Label: "The lab lights kept us company for", Value: "365", Unit: "nights", Comment: "Hair still here, dreams too"},
		deck.Photo{Source: "images/1.jpg", Caption: "Drifting through the sea of science like a jellyfish"},
		deck.Text{Content: "This year we gained not only knowledge, but friendship"},
		deck.Photo{Source: "images/2.jpg", Caption: "Swimming in the ocean of knowledge"},
		deck.Stat{Icon: "📝", Label: "Together we published", Value: "12", Unit: "papers", Comment: "From submission to acceptance, each one a small miracle"},
		deck.Stat{Icon: "🍜", Label: "Team dinners", Value: "24", Unit: "times", Comment: "Research needs fuel!"},
		deck.Outro{Thanks: "Thank you all for your hard work", Message: "Onwards to next year!"},
	}

	descs := make([]deck.Descriptor, 0, len(slides))
	for _, s := range slides {
		descs = append(descs, deck.NewDescriptor(s))
	}
	return descs
}

// DefaultSuggestions returns the shortcut cards of the main surface
func DefaultSuggestions() []Suggestion {
	return []Suggestion{
		{Label: "Our year", Prompt: "Summarize our team's year"},
		{Label: "Highlights", Prompt: "Show the highlights of the year"},
		{Label: "By the numbers", Prompt: "Our year in numbers"},
	}
}
