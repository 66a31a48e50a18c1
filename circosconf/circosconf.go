// Copyright ©2024 the circompare Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package circosconf generates renderer configuration for a comparison
// plot from a small parameter set. Only the configuration shape the
// pipeline needs is covered; the full renderer grammar stays external.
package circosconf

import (
	"io"
	"text/template"
)

// Params drives configuration generation.
type Params struct {
	// Karyotype is the path of the karyotype file, Links the path of the
	// (bundled) link file.
	Karyotype string
	Links     string

	// Dir and File locate the rendered image.
	Dir  string
	File string

	// Units is the chromosomes_units scale. Zero selects 100kb.
	Units int

	// Radius is the image radius in pixels. Zero selects 1500.
	Radius int

	// Ticks and Labels toggle the tick and ideogram label blocks.
	Ticks  bool
	Labels bool
}

func (p Params) withDefaults() Params {
	if p.Units == 0 {
		p.Units = 100000
	}
	if p.Radius == 0 {
		p.Radius = 1500
	}
	if p.Dir == "" {
		p.Dir = "."
	}
	if p.File == "" {
		p.File = "circos.png"
	}
	return p
}

var tmpl = template.Must(template.New("circos").Parse(`karyotype = {{.Karyotype}}
chromosomes_units = {{.Units}}

<links>
<link>
file          = {{.Links}}
radius        = 0.98r
ribbon        = yes
bezier_radius = 0.1r
thickness     = 2
</link>
</links>

<ideogram>
<spacing>
default = 0.002r
</spacing>
radius           = 0.92r
thickness        = 40p
fill             = yes
show_label       = {{if .Labels}}yes{{else}}no{{end}}
label_font       = default
label_radius     = 1r + 75p
label_size       = 24
label_parallel   = yes
</ideogram>

{{if .Ticks}}show_ticks       = yes
show_tick_labels = yes
<ticks>
radius    = 1r
color     = black
thickness = 2p
multiplier = 1e-6
format    = %d
<tick>
spacing = 5u
size    = 10p
</tick>
<tick>
spacing      = 25u
size         = 15p
show_label   = yes
label_size   = 20p
label_offset = 10p
format       = %d
</tick>
</ticks>
{{end}}<image>
<<include etc/image.conf>>
dir    = {{.Dir}}
file   = {{.File}}
radius = {{.Radius}}p
</image>

<<include etc/colors_fonts_patterns.conf>>
<<include etc/housekeeping.conf>>
`))

// Write renders the configuration for p to w.
func Write(w io.Writer, p Params) error {
	return tmpl.Execute(w, p.withDefaults())
}
