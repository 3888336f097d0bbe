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

// Package script allows the terminal to record and replay commands.
//
// The Scribe type records commands to a new script file. Only commands that
// were executed without error should be given to the Scribe. Commands that are
// executed as part of a replayed script are not recorded, but the command that
// started the replay is. We refer to this as scribing.
//
// The Rescribe type reads a script file and returns each command in turn. We
// refer to this as rescribing. Scripts can of course be written by hand. Lines
// that begin with the # symbol are comments and are skipped, as are empty
// lines.
package script
