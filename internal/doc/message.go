package doc

// MessageLevel is the severity of a SystemMessage. Levels are totally
// ordered: Debug < Info < Warning < Error < Fatal.
type MessageLevel int

const (
	Debug MessageLevel = iota
	Info
	Warning
	Error
	Fatal
)

func (l MessageLevel) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// SystemMessage is a diagnostic produced during parsing or rewriting,
// attached to Invalid nodes and rendered only when its level reaches the
// configured minimum severity.
type SystemMessage struct {
	Level   MessageLevel
	Content string
	Options Options
}

func (m *SystemMessage) element()      {}
func (m *SystemMessage) span()         {}
func (m *SystemMessage) Text() string  { return m.Content }
func (m *SystemMessage) Opts() Options { return m.Options }

// NewSystemMessage builds a message span with the given severity.
func NewSystemMessage(level MessageLevel, text string) *SystemMessage {
	return &SystemMessage{Level: level, Content: text}
}

// InvalidSpan wraps a diagnostic plus a safe fallback span.
type InvalidSpan struct {
	SystemMessage *SystemMessage
	Fallback      Span
}

func (s *InvalidSpan) element()                 {}
func (s *InvalidSpan) span()                    {}
func (s *InvalidSpan) Message() *SystemMessage  { return s.SystemMessage }
func (s *InvalidSpan) FallbackElement() Element { return s.Fallback }

// InvalidBlock wraps a diagnostic plus a safe fallback block.
type InvalidBlock struct {
	SystemMessage *SystemMessage
	Fallback      Block
}

func (b *InvalidBlock) element()                 {}
func (b *InvalidBlock) block()                   {}
func (b *InvalidBlock) Message() *SystemMessage  { return b.SystemMessage }
func (b *InvalidBlock) FallbackElement() Element { return b.Fallback }

// NewInvalidSpan pairs an error-severity message with the original source
// text as the rendering fallback.
func NewInvalidSpan(text, source string) *InvalidSpan {
	return &InvalidSpan{
		SystemMessage: NewSystemMessage(Error, text),
		Fallback:      &Text{Content: source},
	}
}
