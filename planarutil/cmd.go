/*
Copyright © 2026 the Planar authors.
This file is part of Planar.

Planar is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Planar is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Planar.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package planarutil holds the command-line interface for working
// with planar geometries stored in GeoJSON or shapefile form.
package planarutil

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/planar"
)

var log = logrus.New()

// Root is the main command.
var Root = &cobra.Command{
	Use:   "planar",
	Short: "planar performs boolean algebra on planar geometries",
	Long: `planar reads geometries from GeoJSON or shapefiles and relates,
combines, measures, and transforms them.`,
	SilenceUsage: true,
}

var (
	outputFile string
	operation  string
)

func init() {
	addOpFlags(opCmd.Flags())
	Root.AddCommand(relateCmd, opCmd, infoCmd)
}

func addOpFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputFile, "output", "o", "-",
		"File to write the result to; - for standard output.")
	fs.StringVar(&operation, "op", "union",
		"Operation to perform: union, intersection, difference, or xor.")
}

var relateCmd = &cobra.Command{
	Use:   "relate [subject file] [other file]",
	Short: "Classify how two geometries relate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := ReadGeometry(args[0])
		if err != nil {
			return err
		}
		b, err := ReadGeometry(args[1])
		if err != nil {
			return err
		}
		fmt.Println(planar.Relate(a, b))
		return nil
	},
}

var opCmd = &cobra.Command{
	Use:   "op [subject file] [other file]",
	Short: "Apply a boolean set operation to two geometries",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := ReadGeometry(args[0])
		if err != nil {
			return err
		}
		b, err := ReadGeometry(args[1])
		if err != nil {
			return err
		}
		var res planar.Geometry
		switch operation {
		case "union":
			res, err = planar.Union(a, b)
		case "intersection":
			res, err = planar.Intersection(a, b)
		case "difference":
			res, err = planar.Difference(a, b)
		case "xor":
			res, err = planar.SymmetricDifference(a, b)
		default:
			return fmt.Errorf("planarutil: unknown operation %q", operation)
		}
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"op":     operation,
			"result": res.Kind().String(),
		}).Info("operation finished")
		return WriteGeometry(outputFile, res)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print a geometry's kind, bounds, and measures",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := ReadGeometry(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("kind:   %s\n", g.Kind())
		if b := g.Bounds(); b != nil {
			fmt.Printf("bounds: (%g, %g) - (%g, %g)\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
		}
		fmt.Printf("area:   %g\n", planar.Area(g))
		fmt.Printf("length: %g\n", planar.Length(g))
		if c, err := planar.Centroid(g); err == nil {
			fmt.Printf("centroid: (%g, %g)\n", c.X, c.Y)
		}
		return nil
	},
}
