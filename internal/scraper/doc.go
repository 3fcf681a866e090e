// Package scraper provides HTTP fetching and text extraction for the
// Milano-Cortina 2026 men's ice hockey schedule page.
//
// The scraper fetches the public schedule from iihf.com and flattens the
// page into trimmed visible text lines, dropping script, style, and noscript
// content. It can optionally load the page through a headless browser when
// the schedule markup is built client side, and it ships a small built-in
// sample schedule as a fallback for when the live page is unreachable or
// empty.
package scraper
