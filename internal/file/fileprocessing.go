package file

import (
	"fmt"
	"os"
)

// OpenSessionFile - Opens an existing session file for reading and does some rudimentary checks of its validity
func OpenSessionFile(fileName string) (filePtr *os.File, err error) {
	stat, err := os.Stat(fileName)
	if err != nil {
		err = fmt.Errorf("session file not found: %s", err)
		return
	}

	if stat.IsDir() {
		err = fmt.Errorf("session file %s is a directory", fileName)
		return
	}

	if stat.Size() == 0 {
		err = fmt.Errorf("session file %s is empty", fileName)
		return
	}

	filePtr, err = os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("unable to open existing session file: %s", err)
	}

	return
}

// CreateSessionFile - Creates a new session file. If it already exists it will be truncated to zero length, hence
// deleting all existing data.
func CreateSessionFile(fileName string) (filePtr *os.File, err error) {
	if stat, ok := os.Stat(fileName); ok == nil && stat.IsDir() {
		err = fmt.Errorf("session file %s is a directory", fileName)
		return
	}

	filePtr, err = os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create new session file: %s", err)
	}

	return
}

// CloseFile - Syncs and closes a session file, returns the first error encountered
func CloseFile(f *os.File) (err error) {
	if f == nil {
		return
	}

	err = f.Sync()
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return
}

// RemoveFile - Removes a session file, make sure to close it first before calling this function
func RemoveFile(fileName string) (err error) {
	// Only try to remove if exists, and is not by accident a directory
	if stat, ok := os.Stat(fileName); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(fileName)
			if err != nil {
				err = fmt.Errorf("error while removing session file: %s", err)
			}
		}
	}

	return
}
