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

package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/boyadbg/boyadbg/curated"
	"github.com/boyadbg/boyadbg/logger"
)

// Sentinel error patterns.
const (
	AlreadyActive = "script: already recording to %s"
	FileExists    = "script: file already exists (%s)"
	NotActive     = "script: not recording"
)

// Scribe records commands to a script file. The zero value is ready to use.
type Scribe struct {
	file     *os.File
	filename string

	// the depth of replayed scripts. commands are not recorded while greater
	// than zero
	playbackDepth int
}

// IsActive returns true if a session has been started and not ended.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// Filename of the current session. Empty if no session is active.
func (scr *Scribe) Filename() string {
	return scr.filename
}

// StartSession creates a new script file. An existing file is never
// overwritten.
func (scr *Scribe) StartSession(filename string) error {
	if scr.IsActive() {
		return curated.Errorf(AlreadyActive, scr.filename)
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return curated.Errorf(FileExists, filename)
		}
		return fmt.Errorf("script: %w", err)
	}

	scr.file = f
	scr.filename = filename
	scr.playbackDepth = 0

	return nil
}

// EndSession closes the script file.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return curated.Errorf(NotActive)
	}

	defer func() {
		scr.file = nil
		scr.filename = ""
		scr.playbackDepth = 0
	}()

	if err := scr.file.Close(); err != nil {
		return fmt.Errorf("script: %w", err)
	}

	return nil
}

// StartPlayback indicates that the commands that follow are from a replayed
// script.
func (scr *Scribe) StartPlayback() {
	scr.playbackDepth++
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() {
	if scr.playbackDepth > 0 {
		scr.playbackDepth--
	}
}

// PlaybackDepth returns the number of replayed scripts that have not finished.
func (scr *Scribe) PlaybackDepth() int {
	return scr.playbackDepth
}

// WriteInput records the command. Does nothing if no session is active or if
// a script is being replayed.
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() || scr.playbackDepth > 0 || command == "" {
		return
	}

	if _, err := io.WriteString(scr.file, command+"\n"); err != nil {
		logger.Logf(logger.Allow, "script", "error writing to %s: %v", scr.filename, err)
	}
}
