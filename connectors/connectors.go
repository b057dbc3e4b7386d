package connectors

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/newrelic-oci/payload-resource/payload"
)

//Input - Struct that represents the input to connectors. The calling tool may
//pass extra context fields in the same object; only payload_url is consulted.
type Input struct {
	PayloadURL string `json:"payload_url"`
}

//Output - represents output from connectors
type Output struct {
	Connectors string `json:"connectors"`
}

//Execute - provides connectors capability
func Execute(input []byte) (string, error) {
	var indata Input

	if err := json.Unmarshal(input, &indata); err != nil {
		return "", fmt.Errorf("Error: %s", err)
	}

	if indata.PayloadURL == "" {
		return "", errors.New("Error: payload_url not provided in input")
	}

	document, err := payload.Fetch(indata.PayloadURL)
	if err != nil {
		return "", errors.Wrap(err, "Error fetching or parsing payload from URL")
	}

	list, ok := document.([]interface{})
	if !ok {
		return "", errors.New("Error: payload from URL must contain a list of connector configurations.")
	}

	contents, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("Error: %s", err)
	}

	outbytes, err := json.Marshal(Output{Connectors: string(contents)})
	if err != nil {
		return "", fmt.Errorf("Error: %s", err)
	}

	return string(outbytes), nil
}
