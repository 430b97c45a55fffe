package main

import (
	"fmt"
	"log"

	"github.com/hujun-open/cobra"
	"github.com/hujun-open/myflags/v2"
)

// Conf is the root command config, the only input is the positional file name
type Conf struct{}

func defConf() *Conf {
	return &Conf{}
}

func (cnf *Conf) init(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expect exactly one input file, got %d arguments", len(args))
	}
	if args[0] == "" {
		return "", fmt.Errorf("input can't be empty")
	}
	return args[0], nil
}

func (cnf *Conf) RootCMD(cmd *cobra.Command, args []string) {
	input, err := cnf.init(args)
	if err != nil {
		log.Fatal(err)
	}
	n, err := Convert(input, FirmwareName)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d lines written in %v", n, FirmwareName)
}

func main() {
	cnf := defConf()
	filler := myflags.NewFiller("hexconverter", "extract hex payloads from a listing into "+FirmwareName,
		myflags.WithRootMethod(cnf.RootCMD))
	err := filler.Fill(cnf)
	if err != nil {
		log.Fatal(err)
	}
	err = filler.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
