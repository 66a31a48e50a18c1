// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"os/exec"

	"github.com/biogo/external"
)

// Minimap2 wraps the minimap2 aligner command line.
type Minimap2 struct {
	// Usage: minimap2 [options] target.fa query.fa > out.paf
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}minimap2{{end}}"` // minimap2

	Preset  string `buildarg:"{{if .}}-x{{split}}{{.}}{{end}}"` // -x <preset>
	Threads int    `buildarg:"{{if .}}-t{{split}}{{.}}{{end}}"` // -t <n>
	OutFile string `buildarg:"{{if .}}-o{{split}}{{.}}{{end}}"` // -o <file>

	Target string `buildarg:"{{.}}"` // <target>
	Query  string `buildarg:"{{.}}"` // <query>
}

// BuildCommand builds the aligner invocation.
func (m Minimap2) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(m)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// Circos wraps the renderer command line.
type Circos struct {
	// Usage: circos -conf circos.conf [options]
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}circos{{end}}"` // circos

	Conf    string `buildarg:"{{if .}}-conf{{split}}{{.}}{{end}}"`       // -conf <file>
	OutDir  string `buildarg:"{{if .}}-outputdir{{split}}{{.}}{{end}}"`  // -outputdir <dir>
	OutFile string `buildarg:"{{if .}}-outputfile{{split}}{{.}}{{end}}"` // -outputfile <file>

	NoParanoid bool `buildarg:"{{if .}}-noparanoid{{end}}"` // -noparanoid
}

// BuildCommand builds the renderer invocation.
func (c Circos) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(c)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
