package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/newrelic-oci/payload-resource/deployment"
)

func main() {
	inbytes, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	output, err := deployment.Execute(inbytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Println(output)
}
