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

package planarutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/planar"
)

// ReadGeometry loads a geometry from a GeoJSON file or a shapefile,
// chosen by file extension. A shapefile's rows are combined into one
// geometry.
func ReadGeometry(path string) (planar.Geometry, error) {
	if strings.ToLower(filepath.Ext(path)) == ".shp" {
		return readShapefile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := geojson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("planarutil: reading %s: %w", path, err)
	}
	return planar.FromGeom(g)
}

func readShapefile(path string) (planar.Geometry, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	var gc geom.GeometryCollection
	for {
		g, _, more := d.DecodeRowFields()
		if !more {
			break
		}
		gc = append(gc, g)
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("planarutil: reading %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"file": path,
		"rows": len(gc),
	}).Info("read shapefile")
	return planar.FromGeom(gc)
}

// WriteGeometry writes a geometry as GeoJSON to the given file, or to
// standard output when the path is "-".
func WriteGeometry(path string, g planar.Geometry) error {
	data, err := geojson.Encode(g.ToGeom())
	if err != nil {
		return fmt.Errorf("planarutil: encoding result: %w", err)
	}
	if path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0644)
}
