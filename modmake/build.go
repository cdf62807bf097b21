package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	obfuscVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	obfusc := NewAppBuild("obfusc", "cmd/obfusc", obfuscVersion)
	obfusc.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", obfuscVersion).
			CgoEnabled(false)
	})
	obfusc.Variant("windows", "amd64")
	obfusc.Variant("linux", "amd64")
	obfusc.Variant("linux", "arm64")
	obfusc.Variant("darwin", "amd64")
	obfusc.Variant("darwin", "arm64")
	b.ImportApp(obfusc)

	b.Execute()
}
