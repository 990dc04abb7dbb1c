package download

import "time"

// DefaultPollInterval is the delay between two status checks
const DefaultPollInterval = 1000 * time.Millisecond

// Messages are the texts written to the status display. Processing and
// ErrorFormat take one %s argument.
type Messages struct {
	Starting    string
	Processing  string
	ErrorFormat string
}

// DefaultMessages returns the English status texts
func DefaultMessages() Messages {
	return Messages{
		Starting:    "Starting download...",
		Processing:  "Processing: %s",
		ErrorFormat: "Error: %s",
	}
}

// Options tune the polling loop. Zero MaxPolls and zero Timeout leave the
// loop unbounded; it then runs until a terminal status, Cancel, or the
// caller's context ends it.
type Options struct {
	PollInterval time.Duration
	MaxPolls     int
	Timeout      time.Duration
	Messages     Messages
}

// DefaultOptions returns unbounded polling at the default interval
func DefaultOptions() Options {
	return Options{
		PollInterval: DefaultPollInterval,
		Messages:     DefaultMessages(),
	}
}

// withDefaults fills zero fields
func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.MaxPolls < 0 {
		o.MaxPolls = 0
	}
	if o.Timeout < 0 {
		o.Timeout = 0
	}
	def := DefaultMessages()
	if o.Messages.Starting == "" {
		o.Messages.Starting = def.Starting
	}
	if o.Messages.Processing == "" {
		o.Messages.Processing = def.Processing
	}
	if o.Messages.ErrorFormat == "" {
		o.Messages.ErrorFormat = def.ErrorFormat
	}
	return o
}
