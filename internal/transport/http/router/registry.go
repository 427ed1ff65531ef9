package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// 按功能域拆模块：每个域实现 APIModule / AdminModule，
// 由引擎统一按优先级挂载（数值越小越先挂，缺省 100）
type APIModule interface{ MountAPI(*gin.RouterGroup) }
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

type prioritizer interface{ Priority() int }

func MountAPIModules(api *gin.RouterGroup, mods ...APIModule) {
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

func MountAdminModules(admin *gin.RouterGroup, mods ...AdminModule) {
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAdmin(admin)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
