package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/orcid2vivo/crosswalk"
	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/format/crossref"
	"github.com/lehigh-university-libraries/orcid2vivo/metrics"
	"github.com/lehigh-university-libraries/orcid2vivo/orcid"
	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
	"github.com/lehigh-university-libraries/orcid2vivo/store/postgres"
	"github.com/lehigh-university-libraries/orcid2vivo/vocab"
)

var (
	inputFile        string
	outputFile       string
	outputFormat     string
	personURI        string
	namespace        string
	vocabularyFile   string
	skipPerson       bool
	skipNameVCard    bool
	existingVCardURI string
	personClass      string
	crossrefURL      string
	mailto           string
	timeout          time.Duration
	cacheDir         string
	noCache          bool
	redisAddr        string
	databaseURL      string
	metricsFile      string
	keepGoing        bool
)

var crosswalkCmd = &cobra.Command{
	Use:   "crosswalk [profile.json...]",
	Short: "Crosswalk ORCID profiles to VIVO-ISF triples",
	Long: `Crosswalk one or more ORCID profile JSON documents to VIVO-ISF triples.

Profiles are read from the given files, from --input, or from stdin. Each
profile is crosswalked completely before the next; a CrossRef failure other
than "not found" aborts the profile and nothing is written for it.

Output goes to --output or stdout. When --database-url is set and no
--output is given, triples are only written to PostgreSQL.

Environment:
  LOG_LEVEL               DEBUG, INFO, WARN or ERROR
  CROSSREF_MAILTO         default for --mailto
  CROSSWALK_REDIS_ADDR    default for --redis-addr
  CROSSWALK_DATABASE_URL  default for --database-url

Examples:
  # One profile to N-Triples on stdout
  orcid2vivo crosswalk -i 0000-0003-1527-0030.json

  # Output format from the file extension
  orcid2vivo crosswalk -i lw.json -o lw.jsonl

  # Link into an existing person and vcard
  orcid2vivo crosswalk -i lw.json --person-uri http://vivo.example.edu/individual/n123 \
    --skip-person --existing-vcard-uri http://vivo.example.edu/individual/n123-vcard

  # Batch load with a shared cache
  orcid2vivo crosswalk profiles/*.json --redis-addr localhost:6379 \
    --database-url postgres://localhost/vivo --keep-going`,
	RunE: runCrosswalk,
}

func init() {
	f := crosswalkCmd.Flags()
	f.StringVarP(&inputFile, "input", "i", "", "Input profile file (default: stdin)")
	f.StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	f.StringVarP(&outputFormat, "format", "f", "ntriples", "Output format (see 'orcid2vivo formats')")
	f.StringVar(&personURI, "person-uri", "", "Person IRI (default: ORCID iD in the individual namespace)")
	f.StringVar(&namespace, "namespace", "", "Individual namespace for derived IRIs")
	f.StringVar(&vocabularyFile, "vocabulary-file", "", "YAML file overriding vocabulary terms")
	f.BoolVar(&skipPerson, "skip-person", false, "Do not type or label the person")
	f.BoolVar(&skipNameVCard, "skip-name-vcard", false, "Do not create a name vcard")
	f.StringVar(&existingVCardURI, "existing-vcard-uri", "", "Link contact records into this vcard")
	f.StringVar(&personClass, "person-class", "", "Person class CURIE or IRI (default: foaf:Person)")
	f.StringVar(&crossrefURL, "crossref-url", crossref.DefaultBaseURL, "CrossRef REST API base URL")
	f.StringVar(&mailto, "mailto", "", "Contact address sent to CrossRef")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "CrossRef request timeout")
	f.StringVar(&cacheDir, "cache-dir", "", "CrossRef response cache directory (default: ~/.orcid2vivo/cache)")
	f.BoolVar(&noCache, "no-cache", false, "Disable the CrossRef response cache")
	f.StringVar(&redisAddr, "redis-addr", "", "Cache CrossRef responses in Redis at this address")
	f.StringVar(&databaseURL, "database-url", "", "Also write triples to this PostgreSQL database")
	f.StringVar(&metricsFile, "metrics-file", "", "Write Prometheus counters to this textfile")
	f.BoolVar(&keepGoing, "keep-going", false, "Skip failed profiles instead of stopping")
}

func runCrosswalk(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()

	inputs := args
	if inputFile != "" {
		inputs = append([]string{inputFile}, inputs...)
	}
	if personURI != "" && len(inputs) > 1 {
		return fmt.Errorf("--person-uri applies to a single profile, got %d inputs", len(inputs))
	}

	v, err := loadVocabulary()
	if err != nil {
		return err
	}

	dsn := envOr(databaseURL, "CROSSWALK_DATABASE_URL")
	writeOutput := outputFile != "" || dsn == ""

	var serializer format.Serializer
	if writeOutput {
		serializer, err = selectSerializer(cmd)
		if err != nil {
			return err
		}
	}

	rec := metrics.NewRecorder()
	client, err := newCrossRefClient(rec)
	if err != nil {
		return err
	}

	cw := crosswalk.New(v, client)
	cw.Metrics = rec

	var st *postgres.Store
	if dsn != "" {
		st, err = postgres.Open(ctx, dsn)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}
	}

	opts := crosswalk.BioOptions{
		SkipPerson:       skipPerson,
		PersonClass:      personClass,
		ExistingVCardURI: existingVCardURI,
		SkipNameVCard:    skipNameVCard,
	}

	out := rdf.NewGraph()
	failed := 0
	for _, name := range inputNames(inputs) {
		g, err := crosswalkInput(ctx, cw, name, opts)
		if err != nil {
			if !keepGoing {
				return err
			}
			slog.Error("skipping profile", "input", name, "error", err)
			failed++
			continue
		}

		if st != nil {
			inserted, err := st.Write(ctx, g.Triples())
			if err != nil {
				return fmt.Errorf("storing %s: %w", name, err)
			}
			slog.Info("stored triples", "input", name, "new", inserted)
		}
		out.Merge(g)
	}

	if writeOutput {
		if err := writeTriples(serializer, out.Triples()); err != nil {
			return err
		}
	}

	if metricsFile != "" {
		if err := rec.WriteTextfile(metricsFile); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d profiles failed", failed)
	}
	return nil
}

// inputNames maps no inputs to stdin.
func inputNames(inputs []string) []string {
	if len(inputs) == 0 {
		return []string{"-"}
	}
	return inputs
}

func crosswalkInput(ctx context.Context, cw *crosswalk.Crosswalker, name string, opts crosswalk.BioOptions) (*rdf.Graph, error) {
	p, err := readProfile(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g := rdf.NewGraph()
	n, err := cw.Profile(ctx, p, personURI, g, opts)
	if err != nil {
		return nil, err
	}
	slog.Info("crosswalked profile", "orcid", p.ORCID(), "works", len(p.Works()), "triples", n, "duration", time.Since(start))
	return g, nil
}

func readProfile(name string) (p *orcid.Profile, err error) {
	var input io.Reader = os.Stdin
	if name != "-" {
		f, openErr := os.Open(name)
		if openErr != nil {
			return nil, fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	}

	p, err = orcid.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return p, nil
}

func loadVocabulary() (*vocab.Vocabulary, error) {
	var (
		v   *vocab.Vocabulary
		err error
	)
	if vocabularyFile != "" {
		v, err = vocab.Load(vocabularyFile)
	} else {
		v, err = vocab.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}
	if namespace != "" {
		v.Individual = namespace
	}
	return v, nil
}

// selectSerializer honours --format, else the output file extension.
func selectSerializer(cmd *cobra.Command) (format.Serializer, error) {
	if outputFile != "" && !cmd.Flags().Changed("format") {
		if s, err := format.DetectSerializer(outputFile); err == nil {
			return s, nil
		}
	}
	s, err := format.GetSerializer(outputFormat)
	if err != nil {
		return nil, fmt.Errorf("unknown output format %q: %w", outputFormat, err)
	}
	return s, nil
}

func newCrossRefClient(rec *metrics.Recorder) (*crossref.Client, error) {
	client := crossref.NewClient(crossrefURL)
	client.Mailto = envOr(mailto, "CROSSREF_MAILTO")
	client.HTTPClient.Timeout = timeout
	client.Metrics = rec

	if noCache {
		return client, nil
	}

	if addr := envOr(redisAddr, "CROSSWALK_REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		client.Cache = crossref.NewRedisCache(rdb, crossref.DefaultCacheTTL)
		return client, nil
	}

	dir := cacheDir
	if dir == "" {
		var err error
		dir, err = crossref.DefaultCacheDir()
		if err != nil {
			return nil, err
		}
	}
	cache, err := crossref.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	client.Cache = cache
	return client, nil
}

func writeTriples(serializer format.Serializer, triples []rdf.Triple) (err error) {
	var output io.Writer = os.Stdout
	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	}

	if err := serializer.Serialize(output, triples); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}
	return nil
}
