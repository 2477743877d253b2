// README: Tasbeeh counter document and errors.
package tasbeeh

import "errors"

var ErrBadRequest = errors.New("bad request")

// MaxStep bounds a single increment so a bad client cannot inflate the
// counter in one call.
const MaxStep = 1000

// Counter is a user's running dhikr count.
type Counter struct {
	Count int64 `firestore:"count" json:"count"`
}
