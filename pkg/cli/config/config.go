/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config reads and writes the YAML configuration file
package config

import (
	"net/url"
	"path/filepath"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Config holds the user configuration
type Config struct {
	Editor      string `yaml:"editor"`
	APIEndpoint string `yaml:"apiEndpoint"`
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIEndpoint, validation.Required, validation.By(isHTTPURL)),
	)
}

func isHTTPURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}

	return nil
}

// GetPath returns the path to the config file
func GetPath(ctx context.HackMDCtx) string {
	return filepath.Join(ctx.Paths.ConfigDir(), consts.ConfigFilename)
}

// Read reads the config file
func Read(ctx context.HackMDCtx) (Config, error) {
	var ret Config

	b, err := afero.ReadFile(ctx.Fs, GetPath(ctx))
	if err != nil {
		return ret, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(b, &ret); err != nil {
		return ret, errors.Wrap(err, "unmarshalling config")
	}

	return ret, nil
}

// Write writes the config to the config file
func Write(ctx context.HackMDCtx, cf Config) error {
	b, err := yaml.Marshal(cf)
	if err != nil {
		return errors.Wrap(err, "marshalling config into YAML")
	}

	if err := utils.WriteFileAtomic(ctx.Fs, GetPath(ctx), b, 0644); err != nil {
		return errors.Wrap(err, "writing the config file")
	}

	return nil
}
