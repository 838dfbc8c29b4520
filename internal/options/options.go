// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	Variant string `arg:"positional" usage:"instruction set variant: 8086, x86"`
}

// Parameters contains file path options.
type Parameters struct {
	Decoder  string `flag:"decoder" usage:"output file of the decode tables, - for stdout"`
	Dispatch string `flag:"dispatch" usage:"output file of the dispatch routine, - for stdout"`
	Dump     string `flag:"dump" usage:"write a dump of the discovered table hierarchy to the file"`
}

// Flags contains behavior options.
type Flags struct {
	Verify bool `flag:"verify" usage:"verify that repeated generation produces identical output"`
	Debug  bool `flag:"debug" usage:"enable debug logging"`
	Quiet  bool `flag:"q" usage:"quiet mode"`
}

// Program options of the table generator.
type Program struct {
	Positional
	Parameters
	Flags
}

// Output is one artifact to generate and the file to write it to.
type Output struct {
	Artifact string
	File     string
}

// Outputs returns the requested artifacts in a fixed order.
func (p Program) Outputs() []Output {
	var outputs []Output
	if p.Decoder != "" {
		outputs = append(outputs, Output{Artifact: "decoder", File: p.Decoder})
	}
	if p.Dispatch != "" {
		outputs = append(outputs, Output{Artifact: "dispatch", File: p.Dispatch})
	}
	return outputs
}
