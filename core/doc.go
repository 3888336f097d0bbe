// This file is part of Boyadbg.
//
// Boyadbg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Boyadbg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Boyadbg.  If not, see <https://www.gnu.org/licenses/>.

// Package core defines the contract between the debugger runtime and an
// emulation core. The core is an external collaborator. It provides cycle
// accurate execution of the emulated machine and the runtime drives it only
// through the Core interface.
//
// Package minicore contains a small deterministic implementation of the
// contract that is suitable for testing and for demonstrating the hosts.
package core
