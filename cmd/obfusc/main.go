package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/urick/obfuskit/cmd/internal"
	"github.com/urick/obfuskit/pkg/bitgate"
	"github.com/urick/obfuskit/pkg/keyfile"
	"github.com/urick/obfuskit/pkg/runlength"
)

var version = "dev"

var log = logrus.New()

func main() {
	var (
		helpFlag        bool
		versionFlag     bool
		verboseFlag     bool
		interactiveFlag bool
		cipherName      string
		keyText         string
		keyfilePath     string
		saveKeyfilePath string
		skipLen         uint
	)
	flags := flag.NewFlagSet("obfusc", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the obfusc version.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Logs transform details to stderr while encoding.")
	flags.BoolVarP(&interactiveFlag, "interactive", "i", false, "Opens an interactive terminal UI instead of encoding arguments.")
	flags.StringVarP(&cipherName, "cipher", "c", "bitgate", "Selects the transform to apply, either bitgate or runlength.")
	flags.StringVarP(&keyText, "key", "k", "", "The key to drive the transform. runlength keys must be decimal digits.")
	flags.UintVarP(&skipLen, "skip", "n", 1, "How many bytes each runlength skip run copies through unchanged.")
	flags.StringVar(&keyfilePath, "keyfile", "", "Loads cipher, key, and skip length from a keyfile, overriding the other key flags.")
	flags.StringVar(&saveKeyfilePath, "save-keyfile", "", "Saves the resolved cipher config to a keyfile at the given path.")
	flags.Usage = func() {
		internal.Echo(`
obfusc applies one of two toy byte-stream obfuscation transforms to its input and prints the result as an uppercase hex string.
The bitgate transform gates a XOR per byte on the bits of the key; the runlength transform alternates masked and copied runs sized by the key's digits, and prints its hex reversed.

USAGE:  obfusc [FLAGS] [PLAINTEXT]

PLAINTEXT is encoded directly when given; otherwise stdin is read until EOF.

FLAGS:
%s
SECURITY:
    These transforms are obfuscation, not encryption. They hide text from casual observation only, and the key is trivially recoverable from known plaintext. Do not protect anything of value with them.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.Echo("obfusc %s", version)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	if interactiveFlag {
		if err := runInteractive(); err != nil {
			internal.Fatal("Interactive session failed: %v", err)
		}
		return
	}

	cfg, err := resolveConfig(cipherName, keyText, skipLen, keyfilePath)
	if err != nil {
		internal.Fatal("%v", err)
	}
	if saveKeyfilePath != "" {
		if err := saveConfig(cfg, saveKeyfilePath); err != nil {
			internal.Fatal("Failed to save keyfile: %v", err)
		}
		log.WithField("path", saveKeyfilePath).Debug("saved keyfile")
	}

	plaintext, err := readPlaintext(flags.Args())
	if err != nil {
		internal.Fatal("Failed to read plaintext: %v", err)
	}
	log.WithFields(logrus.Fields{
		"cipher":  cfg.Cipher.String(),
		"keyLen":  len(cfg.Key),
		"skip":    cfg.Skip,
		"inBytes": len(plaintext),
	}).Debug("encoding payload")

	hex, err := encode(cfg, plaintext)
	if err != nil {
		internal.Fatal("Failed to encode: %v", err)
	}
	fmt.Println(hex)
}

// resolveConfig builds the cipher config from a keyfile when one is given,
// falling back to the individual flags otherwise.
func resolveConfig(cipherName, keyText string, skipLen uint, keyfilePath string) (*keyfile.Config, error) {
	if keyfilePath != "" {
		f, err := os.Open(keyfilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open keyfile: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		cfg, err := keyfile.ReadConfig(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read keyfile: %w", err)
		}
		return cfg, nil
	}
	kind, err := keyfile.ParseKind(cipherName)
	if err != nil {
		return nil, err
	}
	if keyText == "" {
		return nil, fmt.Errorf("missing required --key (or --keyfile)")
	}
	cfg := &keyfile.Config{
		Cipher: kind,
		Skip:   uint64(skipLen),
		Key:    []byte(keyText),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func saveConfig(cfg *keyfile.Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cfg.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readPlaintext(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return []byte(args[0]), nil
	}
	return io.ReadAll(os.Stdin)
}

// encode runs the configured transform and returns the hex rendering:
// plain for bitgate, reversed for runlength.
func encode(cfg *keyfile.Config, plaintext []byte) (string, error) {
	switch cfg.Cipher {
	case keyfile.BitGate:
		return bitgate.EncodeToHex(cfg.Key, plaintext)
	case keyfile.RunLength:
		return runlength.EncodeToHex(cfg.Key, int(cfg.Skip), plaintext)
	default:
		return "", fmt.Errorf("unknown cipher kind %d", uint8(cfg.Cipher))
	}
}
