package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if isSubCommand("add") {
		addMain(os.Args[2:])
	} else if isSubCommand("check") {
		checkMain(os.Args[2:])
	} else if isSubCommand("archive") {
		archiveMain(os.Args[2:])
	} else if isSubCommand("version") {
		versionMain()
	} else {
		usageMain()
	}
}

func isSubCommand(name string) bool {
	return len(os.Args) > 1 && os.Args[1] == name
}

func addMain(args []string) {
	config, err := parseAddConfig("add", args)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(NewAddApp(config).Run())
}

func checkMain(args []string) {
	config, err := parseCheckConfig(args)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(NewCheckApp(config).Run())
}

func archiveMain(args []string) {
	config, err := parseArchiveConfig(args)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(NewArchiveApp(config).Run())
}

func versionMain() {
	fmt.Printf("release [%s]\n", ldflagsSoftwareVersion)
}

func usageMain() {
	fmt.Println("Usage: release <add|check|archive|version> [flags]")
	fmt.Println()
	fmt.Println("	add	Hash files and append their entries to a release manifest.")
	fmt.Println("	check	Verify local artifacts against a release manifest.")
	fmt.Println("	archive	Package a directory as a tar.gz artifact and append its entry.")
	fmt.Println("	version	Print the build version.")
	os.Exit(1)
}

var ldflagsSoftwareVersion = "debug"
