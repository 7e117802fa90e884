// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SKEAPI.
//
//  SKEAPI is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SKEAPI is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SKEAPI.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"skeapi/cnf"
	"skeapi/params"
	"skeapi/remote"
	"skeapi/sketch"
	"sort"
	"strings"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func runCorpInfo(ctx context.Context, client *sketch.Client, corpname string) error {
	info, err := client.Corpus(corpname).Info(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Name: %s\nDescription: %s\nDocumentation: %s\nEncoding: %s\n",
		info.Name, info.Description, info.Documentation, info.Encoding)
	keys := make([]string, 0, len(info.Size))
	for k := range info.Size {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, info.Size[k])
	}
	return nil
}

func fetchWordSketch(ctx context.Context, client *sketch.Client, lemma, lpos string) (*sketch.WordSketch, error) {
	query, err := params.NewStrQuery(map[string]string{"lemma": lemma, "lpos": lpos})
	if err != nil {
		return nil, err
	}
	return client.WordSketch(ctx, params.QueryArg(query))
}

func runWordSketch(ctx context.Context, client *sketch.Client, lemma, lpos string) error {
	ws, err := fetchWordSketch(ctx, client, lemma, lpos)
	if err != nil {
		return err
	}
	fmt.Println(ws)
	fmt.Println("---")
	grs := ws.ExtractGramrels()
	for _, group := range grs.Groups() {
		fmt.Printf("%s (%d)\n", group.Name, group.Len())
		for _, coll := range group.Collocates() {
			fmt.Printf("\t%s\t%.2f\t%d\n", coll.Word(), coll.Score(), coll.Count())
		}
	}
	return nil
}

func runExamples(
	ctx context.Context,
	client *sketch.Client,
	lemma, lpos, gramrel, word string,
	pages, pageSize int,
) error {
	ws, err := fetchWordSketch(ctx, client, lemma, lpos)
	if err != nil {
		return err
	}
	group, ok := ws.ExtractGramrels().Get(gramrel)
	if !ok {
		return fmt.Errorf("grammatical relation `%s` not found", gramrel)
	}
	coll, ok := group.Get(word)
	if !ok {
		return fmt.Errorf("collocate `%s` not found in `%s`", word, gramrel)
	}
	lines, err := coll.Examples(ctx, pages, pageSize)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func main() {
	version := VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}
	pages := flag.Int("pages", 1, "number of example pages to fetch (action `examples`)")
	pageSize := flag.Int("page-size", 20, "size of an example page (action `examples`)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "SKEAPI - a Sketch Engine API client\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] server [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] corpinfo [config.json] [corpus]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] wsketch [config.json] [lemma] [lpos]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] examples [config.json] [lemma] [lpos] [gramrel] [word]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("skeapi %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf, err := cnf.LoadConfig(flag.Arg(1))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
		return
	}
	logging.SetupLogging(logging.LoggingConf{Path: conf.LogFile, Level: conf.LogLevel})
	cnf.ApplyEnv(conf)
	if err := cnf.ValidateAndDefaults(conf); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
		return
	}
	if action == "test" {
		log.Info().Msg("config OK")
		return
	}

	client := sketch.NewClient(
		remote.NewClient(conf.BaseURL, conf.RequestTimeoutSecs, conf.IdleConnTimeoutSecs),
		conf.InitialStore(),
	)
	ctx := context.Background()

	switch action {
	case "server":
		runApiServer(conf, client, version)
	case "corpinfo":
		err = runCorpInfo(ctx, client, flag.Arg(2))
	case "wsketch":
		err = runWordSketch(ctx, client, flag.Arg(2), flag.Arg(3))
	case "examples":
		err = runExamples(
			ctx, client, flag.Arg(2), flag.Arg(3), flag.Arg(4), flag.Arg(5), *pages, *pageSize)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
	if err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("failed to run action")
	}
}
