package autoformat

import (
	"github.com/iw2rmb/draftmark/document"
	"github.com/iw2rmb/draftmark/internal/grapheme"
)

// Result tells the caller whether a handler consumed the event.
type Result uint8

const (
	// NotHandled means the caller performs its default behavior.
	NotHandled Result = iota
	// Handled means the returned state replaces the current one and the
	// default behavior must be skipped.
	Handled
)

func (r Result) String() string {
	if r == Handled {
		return "handled"
	}
	return "not-handled"
}

// Engine applies a trigger table and the paragraph-break reset rules.
// An Engine holds no editor state and is safe to share.
type Engine struct {
	rules  []Rule
	resets map[document.BlockType]document.BlockType
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the trigger table.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) {
		e.rules = sortRules(rules)
	}
}

// WithReturnReset makes Enter inside a block of type from start a block of
// type to.
func WithReturnReset(from, to document.BlockType) Option {
	return func(e *Engine) {
		e.resets[from] = to
	}
}

// New returns an Engine with the default rules and the header-one reset.
func New(opts ...Option) *Engine {
	e := &Engine{
		rules: defaultRules,
		resets: map[document.BlockType]document.BlockType{
			document.HeaderOne: document.Unstyled,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the trigger table in matching order.
func (e *Engine) Rules() []Rule { return append([]Rule(nil), e.rules...) }

// Match reports the rule that fires when chars is typed after
// precedingText.
func (e *Engine) Match(chars, precedingText string, collapsed bool) (Rule, bool) {
	return matchRules(e.rules, chars, precedingText, collapsed)
}

// HandleBeforeInput runs before chars is inserted. If a trigger fires, the
// trigger text is removed (pushed as a remove-range change), the rule's
// action is applied, and Handled is returned: chars must not be inserted.
func (e *Engine) HandleBeforeInput(chars string, s document.EditorState) (document.EditorState, Result) {
	c := s.Content()
	sel := s.Selection()
	start, _ := c.SelectionBounds(sel)
	block, ok := c.BlockForKey(start.Key)
	if !ok {
		return s, NotHandled
	}

	rule, ok := e.Match(chars, block.TextBefore(start.Offset), sel.Collapsed())
	if !ok {
		return s, NotHandled
	}

	removal := document.Selection{
		Anchor: document.Pos{Key: block.Key(), Offset: 0},
		Focus:  document.Pos{Key: block.Key(), Offset: grapheme.Count(rule.Trigger)},
	}
	next := document.Push(s, document.ReplaceText(c, removal, "", document.StyleSet{}), document.ChangeRemoveRange)
	return applyAction(next, rule.Action), Handled
}

func applyAction(s document.EditorState, a Action) document.EditorState {
	switch a.Kind {
	case ActionBlockType:
		return document.Push(s, document.SetBlockType(s.Content(), s.Selection(), a.BlockType), document.ChangeBlockType)
	case ActionStyleOverride:
		return document.SetInlineStyleOverride(s, document.NewStyleSet(a.Style))
	default:
		return s
	}
}

// HandleReturn runs before a paragraph break. Inside a block type with a
// reset mapping it splits the block and gives the trailing block the mapped
// type; otherwise it returns NotHandled.
func (e *Engine) HandleReturn(s document.EditorState) (document.EditorState, Result) {
	to, ok := e.resets[document.CurrentBlockType(s)]
	if !ok {
		return s, NotHandled
	}
	next := document.Push(s, document.SplitBlock(s.Content(), s.Selection()), document.ChangeSplitBlock)
	next = document.Push(next, document.SetBlockType(next.Content(), next.Selection(), to), document.ChangeBlockType)
	return next, Handled
}

// HandleKeyCommand delegates cmd to the document's rich-text command
// handler.
func (e *Engine) HandleKeyCommand(cmd document.KeyCommand, s document.EditorState) (document.EditorState, Result) {
	next, ok := document.HandleKeyCommand(s, cmd)
	if !ok {
		return s, NotHandled
	}
	return next, Handled
}
