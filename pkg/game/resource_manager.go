package game

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/decker502/valentine/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName 内置字体在缓存中的名称
const DefaultFontName = "goregular"

// DefaultFetchTimeout 远程图片下载超时
const DefaultFetchTimeout = 15 * time.Second

// ResourceManager is responsible for centralized management of card resources.
// It provides loading and caching mechanisms for fonts and animated images,
// ensuring that resources are loaded only once and reused across scenes.
//
// The ResourceManager implements the following key features:
// - Font loading and caching (TTF/OTF from the embedded data/ directory or disk)
// - A built-in font with Latin Extended glyphs (Polish diacritics) when no font file is configured
// - Background loading of animated images (GIF) from http(s) URLs or data/ paths
//
// Thread Safety Note:
// Font methods must be called from the game loop goroutine.
// Animation loads run in their own goroutines; Animation guards its state with a mutex.
type ResourceManager struct {
	fontSourceCache map[string]*text.GoTextFaceSource // path -> source (sizes share a source)
	fontFaceCache   map[string]*text.GoTextFace       // "path:size" -> face

	animMu     sync.Mutex
	animations map[string]*Animation // reference -> animation
	client     *http.Client
	maxSide    int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - client: HTTP client for remote images; nil uses a client with DefaultFetchTimeout.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(client *http.Client) *ResourceManager {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ResourceManager{
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		animations:      make(map[string]*Animation),
		client:          client,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// SetMaxImageSide 限制解码后图片帧的最长边（像素），0 表示不限制
// 大图在后台解码时缩小，避免常驻内存过大
func (rm *ResourceManager) SetMaxImageSide(side int) {
	rm.maxSide = side
}

// LoadFont loads a font file and creates a text face of the given size.
// If the face has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The font path (e.g., "data/fonts/card.ttf"); embedded data is preferred.
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSourceCache[path]
	if !exists {
		fontData, err := readResource(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		rm.fontSourceCache[path] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// LoadDefaultFont 加载内置字体（Go Regular）
func (rm *ResourceManager) LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", DefaultFontName, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSourceCache[DefaultFontName]
	if !exists {
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create built-in font source: %w", err)
		}
		rm.fontSourceCache[DefaultFontName] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return rm.fontFaceCache[cacheKey]
}

// LoadAnimation 开始在后台加载动图，立即返回句柄
// 同一引用只加载一次；ref 为 http(s) URL 或 data/ 下的路径
//
// 加载完成前 Animation.State() 为 AnimationLoading，调用方应绘制占位图
func (rm *ResourceManager) LoadAnimation(ref string) *Animation {
	rm.animMu.Lock()
	defer rm.animMu.Unlock()

	if anim, exists := rm.animations[ref]; exists {
		return anim
	}

	anim := newAnimation(ref)
	rm.animations[ref] = anim
	if ref == "" {
		anim.fail(fmt.Errorf("empty image reference"))
		return anim
	}

	rm.wg.Add(1)
	go func() {
		defer rm.wg.Done()
		data, err := rm.fetch(rm.ctx, ref)
		if err != nil {
			log.Printf("[ResourceManager] 图片加载失败 %s: %v", ref, err)
			anim.fail(err)
			return
		}
		frames, err := decodeFrames(data, rm.maxSide)
		if err != nil {
			log.Printf("[ResourceManager] 图片解码失败 %s: %v", ref, err)
			anim.fail(err)
			return
		}
		log.Printf("[ResourceManager] 图片已加载 %s (%d 帧)", ref, len(frames.images))
		anim.ready(frames)
	}()
	return anim
}

// Close 取消所有进行中的下载并等待后台任务结束
func (rm *ResourceManager) Close() {
	rm.cancel()
	rm.wg.Wait()
}

// fetch 读取 http(s) URL 或本地/嵌入资源
func (rm *ResourceManager) fetch(ctx context.Context, ref string) ([]byte, error) {
	if !isRemote(ref) {
		return readResource(ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := rm.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return buf.Bytes(), nil
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// readResource 嵌入资源中存在时优先使用，否则按普通文件路径读取
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
