package drill

import "time"

// timerTickMsg is sent every second to refresh the elapsed-time display.
type timerTickMsg time.Time
