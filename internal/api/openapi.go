package api

import (
	"github.com/Cour-de-cassation/juritj-collect/internal/config"
	"github.com/Cour-de-cassation/juritj-collect/pkg/openapi"
)

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec("JuriTJ Collect API", cfg.Version)
	spec.SetDescription("Collection and normalization of tribunal judiciaire decisions.")
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Metadonnees": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"idDecision":              {Type: "string", Description: "Generated decision identifier"},
				"idJuridiction":           {Type: "string", Pattern: "^TJ[0-9]{5}$"},
				"nomJuridiction":          {Type: "string"},
				"numeroRegistre":          {Type: "string"},
				"numeroRoleGeneral":       {Type: "string", Pattern: "^[0-9]{2}/[0-9]{5}$"},
				"numeroMesureInstruction": {Type: "string"},
				"codeService":             {Type: "string"},
				"libelleService":          {Type: "string"},
				"dateDecision":            {Type: "string", Description: "YYYYMMDD"},
				"dateCreation":            {Type: "string", Format: "date-time"},
				"codeDecision":            {Type: "string"},
				"libelleCodeDecision":     {Type: "string"},
				"codeNAC":                 {Type: "string"},
				"libelleNAC":              {Type: "string"},
				"codeNature":              {Type: "string"},
				"libelleNature":           {Type: "string"},
				"public":                  {Type: "boolean"},
				"labelStatus":             {Type: "string"},
				"parties":                 {Type: "array", Items: &openapi.Schema{Type: "object"}},
			},
			Required: []string{
				"idJuridiction", "nomJuridiction", "numeroRegistre",
				"numeroRoleGeneral", "codeService", "dateDecision",
				"codeDecision", "codeNAC", "codeNature", "parties",
			},
		},
		"Decision": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"idDecision":  {Type: "string"},
				"labelStatus": {Type: "string"},
				"createdAt":   {Type: "string", Format: "date-time"},
				"updatedAt":   {Type: "string", Format: "date-time"},
			},
		},
		"DecisionPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Decision")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"SearchRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"page":           {Type: "integer"},
				"page_size":      {Type: "integer"},
				"search":         {Type: "string"},
				"labelStatus":    {Type: "string"},
				"idJuridiction":  {Type: "string"},
				"codeNAC":        {Type: "string"},
				"public":         {Type: "boolean"},
				"filenameSource": {Type: "string"},
			},
		},
		"Error": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"error": {Type: "string"},
			},
		},
	})

	spec.Paths["/decisions"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List decisions",
			Tags:    []string{"decisions"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Page size", false),
				openapi.QueryParam("search", "string", "Search jurisdiction name or source filename", false),
				openapi.QueryParam("labelStatus", "string", "Filter by label status", false),
				openapi.QueryParam("idJuridiction", "string", "Filter by jurisdiction", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Decision page", "DecisionPage"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Collect a decision",
			Description: "Multipart intake: the decision document under decisionIntegre and its metadata as a JSON string under metadonnees.",
			Tags:        []string{"decisions"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Staged decision metadata", "Metadonnees"),
				400: openapi.ResponseJSON("Invalid metadata", "Error"),
				413: openapi.ResponseJSON("Document too large", "Error"),
			},
		},
	}

	spec.Paths["/decisions/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Find a decision",
			Tags:    []string{"decisions"},
			Parameters: []*openapi.Parameter{
				{
					Name:        "id",
					In:          "path",
					Required:    true,
					Description: "Decision identifier",
					Schema:      &openapi.Schema{Type: "string"},
				},
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Decision", "Decision"),
				404: openapi.ResponseJSON("Not found", "Error"),
			},
		},
	}

	spec.Paths["/decisions/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search decisions",
			Tags:        []string{"decisions"},
			RequestBody: openapi.RequestBodyJSON("SearchRequest", false),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Decision page", "DecisionPage"),
			},
		},
	}

	for _, area := range []string{"raw", "normalized"} {
		spec.Paths["/storage/"+area] = &openapi.PathItem{
			Get: &openapi.Operation{
				Summary: "List " + area + " blobs",
				Tags:    []string{"storage"},
				Parameters: []*openapi.Parameter{
					openapi.QueryParam("prefix", "string", "Key prefix", false),
					openapi.QueryParam("marker", "string", "Continuation marker", false),
					openapi.QueryParam("max_results", "integer", "Page size", false),
				},
				Responses: map[int]*openapi.Response{
					200: {Description: "Blob listing"},
				},
			},
		}
	}

	return spec
}
