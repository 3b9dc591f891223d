package scheduler

import "time"

// overridable in tests
var timeNow = time.Now
