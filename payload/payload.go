package payload

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

//Fetch - retrieves the remote payload document from url and decodes it as JSON.
//The caller decides what shape the document must have.
func Fetch(url string) (interface{}, error) {
	response, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%s returned from %s", response.Status, url)
	}

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	// The whole body must be one JSON document; trailing data is rejected.
	var document interface{}
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, err
	}

	return document, nil
}
