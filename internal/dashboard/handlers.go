package dashboard

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"social-sentiment-dashboard/internal/export"
	"social-sentiment-dashboard/internal/logger"
	"social-sentiment-dashboard/internal/pipeline"
)

const noDataWarning = "No posts found. Try different ticker or higher limit."

type pageData struct {
	Title       string
	Tickers     string
	Limit       int
	Limits      pipeline.Limits
	NoData      bool
	Warning     string
	Error       string
	Chart       template.HTML
	Rows        []export.Row
	Skipped     []pipeline.Skip
	CSVHref     template.URL
	CSVFilename string
}

func (s *Server) page(tickers string, limit int) pageData {
	return pageData{
		Title:       s.cfg.Dashboard.Title,
		Tickers:     tickers,
		Limit:       limit,
		Limits:      s.pipeline.Limits(),
		CSVFilename: s.cfg.Dashboard.CSVFilename,
	}
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html",
		s.page(s.cfg.Dashboard.DefaultTickers, s.pipeline.Limits().Default))
}

// run executes the pipeline for the submitted form and renders either the
// no-data warning or the chart, table and CSV download.
func (s *Server) run(c *gin.Context) {
	ctx := c.Request.Context()
	rawTickers := c.PostForm("tickers")
	limit := s.pipeline.Limits().Normalize(parseLimit(c.PostForm("limit")))
	data := s.page(rawTickers, limit)

	res, err := s.pipeline.Run(ctx, rawTickers, limit)
	if err != nil {
		logger.ErrorWithErr(ctx, "Sentiment run failed", err, "tickers", rawTickers)
		data.Error = fmt.Sprintf("Run failed: %v", err)
		c.HTML(http.StatusInternalServerError, "index.html", data)
		return
	}

	if res.State == pipeline.StateNoData {
		data.NoData = true
		data.Warning = noDataWarning
		data.Skipped = res.Skipped
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	rows := export.Rows(res.Posts)
	body, err := export.CSV(rows)
	if err != nil {
		logger.ErrorWithErr(ctx, "CSV export failed", err, "run_id", res.RunID)
		data.Error = fmt.Sprintf("Export failed: %v", err)
		c.HTML(http.StatusInternalServerError, "index.html", data)
		return
	}

	data.Chart = renderChart(res.Hourly, res.Tickers)
	data.Rows = rows
	data.Skipped = res.Skipped
	data.CSVHref = csvDataURI(body)

	res.MarkRendered(ctx)
	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) sentimentJSON(c *gin.Context) {
	res, err := s.runFromQuery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) sentimentCSV(c *gin.Context) {
	res, err := s.runFromQuery(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.State == pipeline.StateNoData {
		c.JSON(http.StatusNotFound, gin.H{"error": pipeline.ErrNoData.Error(), "run_id": res.RunID})
		return
	}

	body, err := export.CSV(export.Rows(res.Posts))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", s.cfg.Dashboard.CSVFilename))
	c.Data(http.StatusOK, export.ContentType, body)
}

func (s *Server) runFromQuery(c *gin.Context) (*pipeline.Result, error) {
	ctx := c.Request.Context()
	rawTickers := c.DefaultQuery("tickers", s.cfg.Dashboard.DefaultTickers)
	limit := parseLimit(c.Query("limit"))

	res, err := s.pipeline.Run(ctx, rawTickers, limit)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn(ctx, "Sentiment run cancelled by client", "tickers", rawTickers)
		} else {
			logger.ErrorWithErr(ctx, "Sentiment run failed", err, "tickers", rawTickers)
		}
		return nil, err
	}
	return res, nil
}

// parseLimit returns 0 for anything unparseable so the pipeline applies its default
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func csvDataURI(body []byte) template.URL {
	return template.URL("data:text/csv;base64," + base64.StdEncoding.EncodeToString(body))
}
