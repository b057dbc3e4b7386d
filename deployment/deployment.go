package deployment

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/newrelic-oci/payload-resource/payload"
)

var requiredFields = []string{"nr_compartment_id", "ingest_key_vault_ocid", "connectors"}

//Execute - provides deployment capability
func Execute(input []byte) (string, error) {
	var indata Input

	if err := json.Unmarshal(input, &indata); err != nil {
		return "", fmt.Errorf("Error: %s", err)
	}

	if indata.PayloadLink == "" {
		return "", errors.New("Error: payload_link not provided in input")
	}

	document, err := payload.Fetch(indata.PayloadLink)
	if err != nil {
		return "", errors.Wrap(err, "Error fetching or parsing payload from URL")
	}

	// A payload that is not a JSON object has no keys, so the first
	// required field is reported missing.
	fields, _ := document.(map[string]interface{})
	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			return "", fmt.Errorf("Error: '%s' is missing from payload", field)
		}
	}

	connectors, err := json.Marshal(fields["connectors"])
	if err != nil {
		return "", fmt.Errorf("Error: %s", err)
	}

	outdata := Output{
		Connectors:     string(connectors),
		CompartmentID:  stringify(fields["nr_compartment_id"]),
		HomeSecretOCID: stringify(fields["ingest_key_vault_ocid"]),
	}

	outbytes, err := json.Marshal(outdata)
	if err != nil {
		return "", fmt.Errorf("Error: %s", err)
	}

	return string(outbytes), nil
}

func stringify(value interface{}) string {
	switch value := value.(type) {
	case nil:
		return ""
	case string:
		return value
	}
	return fmt.Sprintf("%v", value)
}
