package commands

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/battlesnakeio/lightcycles/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sessionID string

func init() {
	statusCmd.Flags().StringVarP(&sessionID, "session-id", "s", "", "the session to get the status of, lists sessions when empty")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "gets the status of a session from a running server",
	RunE: func(*cobra.Command, []string) error {
		client := &http.Client{
			Timeout: 5 * time.Second,
		}
		if sessionID == "" {
			var ids []string
			if err := getJSON(client, fmt.Sprintf("%s/sessions", apiAddr), &ids); err != nil {
				return err
			}
			spew.Dump(ids)
			return nil
		}

		st, err := getStatus(client, sessionID)
		if err != nil {
			return err
		}
		spew.Dump(st)
		return nil
	},
}

func getStatus(client *http.Client, id string) (*session.Status, error) {
	st := &session.Status{}
	if err := getJSON(client, fmt.Sprintf("%s/sessions/%s", apiAddr, id), st); err != nil {
		return nil, err
	}
	return st, nil
}

func getJSON(client *http.Client, url string, v interface{}) error {
	resp, err := client.Get(url)
	if err != nil {
		return errors.Wrap(err, "error while getting status")
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "unable to read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("status request failed: %s: %s", resp.Status, data)
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.WithFields(log.Fields{
			"resp": string(data),
			"url":  url,
		}).Info("unable to unmarshal status response")
		return errors.Wrap(err, "unable to unmarshal status response")
	}
	return nil
}
