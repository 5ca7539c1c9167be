package forgeutils

import "fmt"

// Config holds global configuration for the package
var Config config = config{}

type config struct {
	traceSink func(string)
}

// SetTraceSink routes PrintPrefab output to the given sink. A nil sink
// restores the default (stdout).
func (c *config) SetTraceSink(sink func(string)) {
	c.traceSink = sink
}

func (c *config) trace(msg string) {
	if c.traceSink != nil {
		c.traceSink(msg)
		return
	}
	fmt.Println(msg)
}
