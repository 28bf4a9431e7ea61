package ledger

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// newSerialNumber builds a human-presentable certificate serial. The
// millisecond timestamp keeps serials unique within the process lifetime;
// the random suffix covers two issuances landing in the same millisecond.
func newSerialNumber() string {
	now := nowFunc()
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("LMS-%d-%s-%04d", now.Year(), stamp, rand.Intn(10000))
}
