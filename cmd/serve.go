package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/beatgrid/constants"
	"github.com/jsphweid/beatgrid/grid"
	"github.com/jsphweid/beatgrid/model"
	"github.com/jsphweid/beatgrid/score"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// request bodies are scores, not uploads
const maxBodyBytes = 8 << 20

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves grids over http",
	Long: `Serves grids over http. POST a score to /grid and get the grid back as JSON.
Query parameters: format (json|midi), tune, maxPatterns, coverTails.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("Listening on %v\n", serveAddr)
		log.Fatal(http.ListenAndServe(serveAddr, NewRouter()))
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/grid", HandleGrid).Methods(http.MethodPost)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func HandleGrid(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()

	opts, err := parseGridQuery(r.URL.Query())
	if err != nil {
		writeError(w, id, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, id, fault.Wrap(err,
			fmsg.WithDesc("reading request body", "The request body could not be read."),
			ftag.With(ftag.InvalidArgument)))
		return
	}

	renderer := score.RendererFor(r.URL.Query().Get("format"))
	res, err := score.Convert(r.Context(), renderer, body, opts)
	if err != nil {
		writeError(w, id, classify(err))
		return
	}
	logNotices(id, res.Notices)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.GridResponse{ID: id, GridResult: res})
}

func parseGridQuery(q url.Values) (score.Options, error) {
	opts := score.Options{Grid: grid.Options{MaxPatterns: constants.GetMaxPatterns()}}

	ints := map[string]*int{
		"tune":        &opts.Tune,
		"maxPatterns": &opts.Grid.MaxPatterns,
	}
	for name, dst := range ints {
		val := q.Get(name)
		if val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return opts, fault.Wrap(err,
				fmsg.WithDesc("bad "+name, name+" must be an integer."),
				ftag.With(ftag.InvalidArgument))
		}
		*dst = n
	}

	if val := q.Get("coverTails"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return opts, fault.Wrap(err,
				fmsg.WithDesc("bad coverTails", "coverTails must be true or false."),
				ftag.With(ftag.InvalidArgument))
		}
		opts.Grid.CoverTails = b
	}
	return opts, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, score.ErrNoTimelineParsed):
		return fault.Wrap(err,
			fmsg.WithDesc("no timeline", "No notation could be parsed from the request body."),
			ftag.With(ftag.NotFound))
	case errors.Is(err, score.ErrTuneOutOfRange):
		return fault.Wrap(err,
			fmsg.WithDesc("tune out of range", "The requested tune does not exist in this score."),
			ftag.With(ftag.InvalidArgument))
	default:
		return fault.Wrap(err,
			fmsg.WithDesc("render failed", "The score could not be decoded."),
			ftag.With(ftag.InvalidArgument))
	}
}

func statusFor(err error) int {
	switch ftag.Get(err) {
	case ftag.NotFound:
		return http.StatusUnprocessableEntity
	case ftag.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, id string, err error) {
	log.Printf("%s: %v\n", id, err)
	detail := fmsg.GetIssue(err)
	if detail == "" {
		detail = http.StatusText(statusFor(err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(err))
	json.NewEncoder(w).Encode(model.ErrorResponse{ID: id, Error: detail})
}
