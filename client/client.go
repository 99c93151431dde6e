// Package client is the API-calling core shared by the desktop editor
// front ends. Every call is a blocking request with a fixed timeout and
// no retry; failures come back as a single message fit for a toast.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"redakce-cms/models"
)

const (
	loginTimeout  = 8 * time.Second
	readTimeout   = 10 * time.Second
	writeTimeout  = 12 * time.Second
	uploadTimeout = 20 * time.Second
)

type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

// envelope mirrors the server's uniform response shape; payload fields
// of the individual endpoints are flattened alongside ok/error.
type envelope struct {
	Ok       bool                     `json:"ok"`
	Error    string                   `json:"error"`
	Token    string                   `json:"token"`
	Role     models.UserRole          `json:"role"`
	Username string                   `json:"username"`
	ID       uint                     `json:"id"`
	URL      string                   `json:"url"`
	Articles []models.ArticleListItem `json:"articles"`
	Article  *models.ArticleDetail    `json:"article"`
}

func (c *Client) do(req *http.Request, timeout time.Duration) (*envelope, error) {
	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("Server neodpovídá: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("Neplatná odpověď serveru (HTTP %d).", resp.StatusCode)
	}
	if !env.Ok {
		if env.Error == "" {
			return nil, fmt.Errorf("Neplatná odpověď serveru (HTTP %d).", resp.StatusCode)
		}
		return nil, fmt.Errorf("%s", env.Error)
	}
	return &env, nil
}

func (c *Client) jsonRequest(method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return req, nil
}

// Login stores the minted token on the client for the following calls.
func (c *Client) Login(username, password string) (*models.APILoginResponse, error) {
	req, err := c.jsonRequest(http.MethodPost, "/api/login", models.APILoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	env, err := c.do(req, loginTimeout)
	if err != nil {
		return nil, err
	}

	c.Token = env.Token
	return &models.APILoginResponse{
		Token:    env.Token,
		Role:     env.Role,
		Username: env.Username,
	}, nil
}

func (c *Client) ListArticles() ([]models.ArticleListItem, error) {
	req, err := c.jsonRequest(http.MethodGet, "/api/articles", nil)
	if err != nil {
		return nil, err
	}
	env, err := c.do(req, readTimeout)
	if err != nil {
		return nil, err
	}
	return env.Articles, nil
}

func (c *Client) GetArticle(id uint) (*models.ArticleDetail, error) {
	req, err := c.jsonRequest(http.MethodGet, fmt.Sprintf("/api/articles/%d", id), nil)
	if err != nil {
		return nil, err
	}
	env, err := c.do(req, readTimeout)
	if err != nil {
		return nil, err
	}
	if env.Article == nil {
		return nil, fmt.Errorf("Neplatná odpověď serveru.")
	}
	return env.Article, nil
}

func (c *Client) CreateArticle(title, perex, content string) (uint, error) {
	req, err := c.jsonRequest(http.MethodPost, "/api/articles", models.ArticleRequest{
		Title:   title,
		Perex:   perex,
		Content: content,
	})
	if err != nil {
		return 0, err
	}
	env, err := c.do(req, writeTimeout)
	if err != nil {
		return 0, err
	}
	return env.ID, nil
}

func (c *Client) UpdateArticle(id uint, title, perex, content string) error {
	req, err := c.jsonRequest(http.MethodPut, fmt.Sprintf("/api/articles/%d", id), models.ArticleRequest{
		Title:   title,
		Perex:   perex,
		Content: content,
	})
	if err != nil {
		return err
	}
	_, err = c.do(req, writeTimeout)
	return err
}

func (c *Client) DeleteArticle(id uint) error {
	req, err := c.jsonRequest(http.MethodDelete, fmt.Sprintf("/api/articles/%d", id), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req, writeTimeout)
	return err
}

// UploadImage sends the file as the multipart "file" field and returns
// the relative URL to embed as an <img> tag.
func (c *Client) UploadImage(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("Soubor se nepodařilo otevřít: %v", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	env, err := c.do(req, uploadTimeout)
	if err != nil {
		return "", err
	}
	return env.URL, nil
}
