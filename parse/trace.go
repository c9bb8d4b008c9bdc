package parse

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/tokenize/cursor"
	"github.com/dhamidi/tokenize/either"
)

const traceLogger = "tokenize.parse"

// Trace logs every invocation of p at debug level under name. The logger
// is looked up when Trace is called, so the logging backend has to be
// configured before the parser is built.
func Trace[R, L any](name string, p Parser[R, L]) Parser[R, L] {
	log := commonlog.GetLogger(traceLogger)
	return Func[R, L](func(c cursor.Cursor) either.Either[R, L] {
		if !log.AllowLevel(commonlog.Debug) {
			return p.Parse(c)
		}
		begin := c.Offset()
		log.Debugf("%s: enter at %d", name, begin)
		r := p.Parse(c)
		log.Debugf("%s: %s %s", name, r.Mode(), Position{Begin: begin, End: c.Offset()})
		return r
	})
}
