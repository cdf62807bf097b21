package main

import (
	"strconv"

	"github.com/rivo/tview"

	"github.com/urick/obfuskit/pkg/keyfile"
)

// runInteractive opens a terminal form for trying out the transforms without
// retyping flags.
func runInteractive() error {
	var (
		cipherName = "bitgate"
		keyText    string
		skipText   = "1"
		plainText  string
	)
	app := tview.NewApplication()

	output := tview.NewTextView()
	output.SetBorder(true)
	output.SetTitle("hex output")

	form := tview.NewForm().
		AddDropDown("Cipher", []string{"bitgate", "runlength"}, 0, func(option string, _ int) {
			cipherName = option
		}).
		AddInputField("Key", "", 40, nil, func(text string) {
			keyText = text
		}).
		AddInputField("Skip length", "1", 10, nil, func(text string) {
			skipText = text
		}).
		AddInputField("Plaintext", "", 40, nil, func(text string) {
			plainText = text
		})
	form.AddButton("Encode", func() {
		output.SetText(interactiveEncode(cipherName, keyText, skipText, plainText))
	}).
		AddButton("Quit", func() {
			app.Stop()
		})
	form.SetBorder(true)
	form.SetTitle("obfusc " + version)
	form.SetTitleAlign(tview.AlignLeft)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 0, 3, true).
		AddItem(output, 0, 1, false)
	return app.SetRoot(flex, true).Run()
}

func interactiveEncode(cipherName, keyText, skipText, plainText string) string {
	kind, err := keyfile.ParseKind(cipherName)
	if err != nil {
		return "error: " + err.Error()
	}
	skip, err := strconv.ParseUint(skipText, 10, 32)
	if err != nil {
		return "error: skip length must be a non-negative integer"
	}
	cfg := &keyfile.Config{
		Cipher: kind,
		Skip:   skip,
		Key:    []byte(keyText),
	}
	if err := cfg.Validate(); err != nil {
		return "error: " + err.Error()
	}
	hex, err := encode(cfg, []byte(plainText))
	if err != nil {
		return "error: " + err.Error()
	}
	return hex
}
