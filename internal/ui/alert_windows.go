//go:build windows

package ui

import (
	"fmt"
	"syscall"

	"github.com/lxn/win"
)

// showAlert blocks on a native message box until dismissed.
func showAlert(title, text string) error {
	textPtr, err := syscall.UTF16PtrFromString(text)
	if err != nil {
		return fmt.Errorf("encoding alert text: %w", err)
	}
	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("encoding alert title: %w", err)
	}

	win.MessageBox(0, textPtr, titlePtr, win.MB_OK)
	return nil
}
