package ui

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tablematch/adapters/excel"
	"tablematch/domain/table"
	"tablematch/internal/errors"
	"tablematch/internal/match"
	"tablematch/internal/parse"
)

// filterResult keeps the last filter output around for export.
type filterResult struct {
	headers []string
	rows    []table.FilteredRow
}

// filteredRowView is the wire shape of one filtered row: the row itself, its
// match records, and the rendered "keywords found" cell.
type filteredRowView struct {
	Row     table.Row           `json:"row"`
	Matches []table.MatchRecord `json:"matches"`
	Found   string              `json:"found"`
}

func (a *App) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// handleDatasetUpload imports a delimited text or workbook file into the
// role named in the URL, replacing whatever dataset that role held.
func (a *App) handleDatasetUpload(c *gin.Context) {
	roleStr := c.Param("role")
	if !ValidRole(roleStr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dataset role: " + roleStr})
		return
	}
	role := Role(roleStr)

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		log.Printf("[handleDatasetUpload] FAILED - No file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	maxBytes := a.cfg.Upload.MaxUploadMB << 20
	if header.Size > maxBytes {
		log.Printf("[handleDatasetUpload] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the upload size limit"})
		return
	}

	var ds *table.Dataset
	if excel.IsWorkbookFile(header.Filename) {
		cells, err := a.workbooks.ReadMatrix(file)
		if err != nil {
			log.Printf("[handleDatasetUpload] FAILED - Workbook decode failed: %v", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
			return
		}
		ds = parse.FromMatrix(cells)
	} else {
		raw, err := io.ReadAll(file)
		if err != nil {
			log.Printf("[handleDatasetUpload] FAILED - Could not read upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		ds = parse.FromText(string(raw))
	}

	stored := a.storeDataset(role, header.Filename, ds)
	log.Printf("[handleDatasetUpload] Imported %s into role %s (%d columns, %d rows)",
		header.Filename, role, len(ds.Headers), len(ds.Rows))

	c.JSON(http.StatusOK, gin.H{
		"dataset_id": stored.ID,
		"filename":   stored.Filename,
		"headers":    ds.Headers,
		"row_count":  len(ds.Rows),
		"profile":    stored.Profile,
	})
}

// handleDatasetGet returns the dataset currently stored for a role.
func (a *App) handleDatasetGet(c *gin.Context) {
	roleStr := c.Param("role")
	if !ValidRole(roleStr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dataset role: " + roleStr})
		return
	}
	stored := a.getDataset(Role(roleStr))
	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset imported for role " + roleStr})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// handleKeywords returns the keyword list extracted from the reference
// dataset, plus its comma-joined text form for the keyword box.
func (a *App) handleKeywords(c *gin.Context) {
	keywords := a.referenceKeywords()
	c.JSON(http.StatusOK, gin.H{
		"keywords": keywords,
		"text":     match.JoinKeywords(keywords),
	})
}

// handleFilter runs the row filter over the dataset of the requested role.
// The compare role implies match-required mode and the keyword snap-back to
// the reference list; the target role shows everything when no keywords are
// set.
func (a *App) handleFilter(c *gin.Context) {
	var req struct {
		Role            string   `json:"role"`
		KeywordText     string   `json:"keyword_text"`
		SelectedColumns []string `json:"selected_columns"`
		CaseSensitive   bool     `json:"case_sensitive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if !ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dataset role: " + req.Role})
		return
	}
	role := Role(req.Role)

	stored := a.getDataset(role)
	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dataset imported for role " + req.Role})
		return
	}
	ds := stored.Dataset

	mode := table.ModeShowAllOnEmpty
	comparison := role == RoleCompare
	if comparison {
		mode = table.ModeMatchRequired
	}

	keywords, resolvedText := match.ResolveKeywords(req.KeywordText, a.referenceKeywords(), comparison)

	// A request without a column list means every column is searchable,
	// the state a freshly imported dataset starts in.
	cfg := table.NewFilterConfig(ds.Headers)
	if req.SelectedColumns != nil {
		cfg.SelectedColumns = make(map[string]bool, len(req.SelectedColumns))
		for _, h := range req.SelectedColumns {
			cfg.SelectedColumns[h] = true
		}
	}
	cfg.Keywords = keywords
	cfg.CaseSensitive = req.CaseSensitive
	filtered := match.FilterRows(ds, cfg, mode)

	a.mu.Lock()
	a.lastFilter = &filterResult{headers: ds.Headers, rows: filtered}
	a.mu.Unlock()

	views := make([]filteredRowView, len(filtered))
	for i, fr := range filtered {
		views[i] = filteredRowView{
			Row:     fr.Row,
			Matches: fr.Matches,
			Found:   match.FormatMatches(fr.Matches),
		}
	}

	log.Printf("[handleFilter] role=%s keywords=%d rows=%d/%d", role, len(keywords), len(filtered), len(ds.Rows))
	c.JSON(http.StatusOK, gin.H{
		"resolved_text": resolvedText,
		"keywords":      keywords,
		"rows":          views,
		"total_rows":    len(ds.Rows),
	})
}

// handleFilterExport streams the last filter result as a CSV download, the
// rendered "keywords found" column appended after the dataset columns.
func (a *App) handleFilterExport(c *gin.Context) {
	a.mu.RLock()
	result := a.lastFilter
	a.mu.RUnlock()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no filter result to export"})
		return
	}

	var sb strings.Builder
	headerRow := append(append([]string{}, result.headers...), "Keywords found")
	sb.WriteString(parse.WriteRow(headerRow, ','))
	sb.WriteString("\n")
	for _, fr := range result.rows {
		fields := make([]string, 0, len(result.headers)+1)
		for _, h := range result.headers {
			fields = append(fields, fr.Row[h])
		}
		fields = append(fields, match.FormatMatches(fr.Matches))
		sb.WriteString(parse.WriteRow(fields, ','))
		sb.WriteString("\n")
	}

	c.Header("Content-Disposition", `attachment; filename="filtered.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(sb.String()))
}
