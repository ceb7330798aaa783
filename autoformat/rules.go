package autoformat

import (
	"sort"

	"github.com/iw2rmb/draftmark/document"
	"github.com/iw2rmb/draftmark/internal/grapheme"
)

// TriggerChar is the character that completes a trigger.
const TriggerChar = " "

// ActionKind selects what a matched rule does.
type ActionKind uint8

const (
	// ActionBlockType sets the caret block's type.
	ActionBlockType ActionKind = iota
	// ActionStyleOverride replaces the pending inline style override.
	ActionStyleOverride
)

// Action is the formatting applied when a rule fires.
type Action struct {
	Kind      ActionKind
	BlockType document.BlockType   // ActionBlockType
	Style     document.InlineStyle // ActionStyleOverride
}

// Rule maps an exact block prefix to an Action.
type Rule struct {
	Trigger string
	Action  Action
}

// BlockRule returns a rule setting the block type to typ.
func BlockRule(trigger string, typ document.BlockType) Rule {
	return Rule{Trigger: trigger, Action: Action{Kind: ActionBlockType, BlockType: typ}}
}

// StyleRule returns a rule overriding the style of the next typed text.
func StyleRule(trigger string, style document.InlineStyle) Rule {
	return Rule{Trigger: trigger, Action: Action{Kind: ActionStyleOverride, Style: style}}
}

// DefaultRules returns the built-in trigger table.
func DefaultRules() []Rule {
	return []Rule{
		BlockRule("#", document.HeaderOne),
		StyleRule("***", document.Underline),
		StyleRule("**", document.RedLine),
		StyleRule("*", document.Bold),
	}
}

var defaultRules = sortRules(DefaultRules())

// Match reports the default rule that fires when chars is typed after
// precedingText. Nothing fires for a non-collapsed selection.
func Match(chars, precedingText string, collapsed bool) (Rule, bool) {
	return matchRules(defaultRules, chars, precedingText, collapsed)
}

func matchRules(rules []Rule, chars, precedingText string, collapsed bool) (Rule, bool) {
	if chars != TriggerChar || !collapsed || precedingText == "" {
		return Rule{}, false
	}
	for _, r := range rules {
		if r.Trigger == precedingText {
			return r, true
		}
	}
	return Rule{}, false
}

// sortRules orders rules longest trigger first so that no rule is shadowed
// by a shorter one that is its prefix. Equal lengths keep registration order.
func sortRules(rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Trigger == "" {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return grapheme.Count(out[i].Trigger) > grapheme.Count(out[j].Trigger)
	})
	return out
}
