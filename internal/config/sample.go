package config

// SampleConfig returns a documented configuration file
func SampleConfig() string {
	return `# recap configuration
version: "1.0"

presentation:
  year: "2025"
  team_name: "The Lab"
  # How long the loading indicator is shown before the first slide
  loading_duration: 1500ms
  # Advance automatically every interval; 0 disables it
  auto_advance: 0s
  # Length of the number counter on stat slides
  counter_duration: 1500ms
  # Locale used for thousands separators while counting
  locale: en

display:
  theme: default        # default, high-contrast, minimal
  color_mode: auto      # auto, always, never
  no_emoji: false
  frame_rate: 60
  disable_mouse: false

suggestions:
  - label: Our year
    prompt: Summarize our team's year
  - label: Highlights
    prompt: Show the highlights of the year

# Slide types: intro, stat, photo, text, outro
slides:
  - type: intro
    title: Year in Review
    subtitle: Looking back on every moment of the year
  - type: stat
    icon: "☕"
    label: For science, we drank
    value: "2,048"
    unit: cups of coffee
    comment: Caffeine is the first productive force
  - type: photo
    src: images/1.jpg
    caption: Drifting through the sea of science
  - type: text
    content: This year we gained not only knowledge, but friendship
  - type: outro
    thanks: Thank you all for your hard work
    message: Onwards to next year!
`
}

// MinimalSampleConfig returns a configuration with only a deck
func MinimalSampleConfig() string {
	return `presentation:
  team_name: "The Lab"

slides:
  - type: intro
    subtitle: Our year
  - type: stat
    icon: "🚀"
    label: We shipped
    value: "42"
    unit: releases
  - type: outro
    thanks: Thank you
    message: See you next year
`
}
