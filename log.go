package touchplot

import (
	"io"
	"log"
	"os"
)

// Debug enables tracing of tick generation and hit testing to
// Logger.
var Debug = false

// Logger receives the debug output.
var Logger = log.New(os.Stderr, "touchplot: ", log.Lmicroseconds)

func debugf(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Logger.Printf(format, args...)
}

// SetDebugOutput turns debugging on and directs it to w. A nil w turns
// debugging off.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		Debug = false
		return
	}
	Logger.SetOutput(w)
	Debug = true
}
