// Package views builds the Slack Block Kit surfaces the app publishes.
package views

import (
	"github.com/cjdenio/slack-club-bank/internal/models"
	"github.com/slack-go/slack"
)

// Action IDs the home tab emits.
const (
	SlugActionID    = "slug"
	NothingActionID = "nothing"
)

// FlavorTexts are shown under the loading indicator, one picked at random per search.
var FlavorTexts = []string{
	"beep boop boop...",
	"choo choo chew...",
	"powered by javascript!",
	"how does this even work?",
	"connecting to hack club bank...",
	"how long will this take?",
	"the ghosts are working very hard",
	"are you filled with determination?",
	"hacking the bank...",
	"this bank doesn't even have lollipops",
}

// SearchBar is the organization ID input. Pressing enter dispatches a block
// action with SlugActionID. slug is prefilled when non-empty.
func SearchBar(slug string) *slack.InputBlock {
	input := slack.NewPlainTextInputBlockElement(
		plainText(`Try "hq", "zephyr", or "assemble"`),
		SlugActionID,
	)
	input.DispatchActionConfig = &slack.DispatchActionConfig{
		TriggerActionsOn: []string{"on_enter_pressed"},
	}
	if slug != "" {
		input.WithInitialValue(slug)
	}

	block := slack.NewInputBlock("", plainText("Organization ID"), plainText("The last part of the URL."), input)
	block.DispatchAction = true
	return block
}

// IdleView is the home tab before any search.
func IdleView() slack.HomeTabViewRequest {
	return homeTab(SearchBar(""))
}

// LoadingView is published while an organization is being fetched.
func LoadingView(slug, flavor string) slack.HomeTabViewRequest {
	return homeTab(
		SearchBar(slug),
		slack.NewSectionBlock(plainText(":loading: loading..."), nil, nil),
		slack.NewContextBlock("", markdown(flavor)),
	)
}

// SuccessView shows a fetched organization below the search bar.
func SuccessView(slug string, ev *models.Event) slack.HomeTabViewRequest {
	blocks := []slack.Block{SearchBar(slug), slack.NewDividerBlock()}
	blocks = append(blocks, RenderEvent(ev)...)
	return homeTab(blocks...)
}

// ErrorView reports a failed lookup. The error text is shown as is.
func ErrorView(slug string, err error) slack.HomeTabViewRequest {
	return homeTab(
		SearchBar(slug),
		slack.NewSectionBlock(markdown(":x: oops, couldn't fetch that organization"), nil, nil),
		slack.NewSectionBlock(markdown("```"+err.Error()+"```"), nil, nil),
	)
}

func homeTab(blocks ...slack.Block) slack.HomeTabViewRequest {
	return slack.HomeTabViewRequest{
		Type:   slack.VTHomeTab,
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
