// This file is part of Banks2600.
//
// Banks2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Banks2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Banks2600.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview embeds a live runtime statistics server in the binary.
// The stress mode uses it to watch allocation and GC behaviour while the
// access loop runs; the charts themselves come from the
// "github.com/go-echarts/statsview" module.
//
// The server only exists when the statsview build constraint is given:
//
//	go build -tags statsview
//
// With the constraint in place the charts are served at
//
//	localhost:12600/debug/statsview
//
// and the standard pprof endpoints sit alongside at
//
//	localhost:12600/debug/pprof/
//
// Without the constraint the package compiles to stubs. Available() reports
// which version is in the binary.
package statsview
