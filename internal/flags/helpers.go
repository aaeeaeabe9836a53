// Copyright 2024 The fixedstack Authors
// This file is part of fixedstack.
//
// fixedstack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fixedstack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with fixedstack. If not, see <http://www.gnu.org/licenses/>.

// Package flags holds the shared cli bits of the fixedstack commands.
package flags

import (
	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

// NewApp creates a cli app with the defaults shared by the fixedstack
// commands.
func NewApp(usage string) *cli.App {
	app := cli.NewApp()
	app.EnableBashCompletion = true
	app.Version = version
	app.Usage = usage
	app.Copyright = "Copyright 2024 The fixedstack Authors"
	return app
}

// Merge merges the given flag slices.
func Merge(groups ...[]cli.Flag) []cli.Flag {
	var ret []cli.Flag
	for _, group := range groups {
		ret = append(ret, group...)
	}
	return ret
}
