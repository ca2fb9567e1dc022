package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/services"
	"github.com/restobar-app/backend/utils"
)

type MenuController struct {
	DB       *gorm.DB
	Notifier services.Notifier
}

func NewMenuController(db *gorm.DB, notifier services.Notifier) *MenuController {
	if notifier == nil {
		notifier = services.NoopNotifier{}
	}
	return &MenuController{DB: db, Notifier: notifier}
}

type recetaLineaReq struct {
	InsumoCodigo string  `json:"InsumoCodigo" binding:"required"`
	Cantidad     float64 `json:"Cantidad" binding:"required,gt=0"`
}

// crearMenuReq covers both creation paths. A direct item ('I') brings the
// fields of a brand-new insumo it will be sold from; a recipe item ('A')
// brings its receta lines against existing insumos.
type crearMenuReq struct {
	MenuPlatos          string  `json:"MenuPlatos" binding:"required"`
	MenuDescripcion     string  `json:"MenuDescripcion"`
	MenuPrecio          float64 `json:"MenuPrecio" binding:"required,gt=0"`
	MenuEsPreparado     string  `json:"MenuEsPreparado" binding:"required"`
	MenuCategoriaCodigo string  `json:"MenuCategoriaCodigo" binding:"required"`
	MenuImageUrl        *string `json:"MenuImageUrl"`

	// Direct path
	InsumoUnidadMedida string   `json:"InsumoUnidadMedida"`
	InsumoStockActual  *float64 `json:"InsumoStockActual"`
	InsumoCompraUnidad *float64 `json:"InsumoCompraUnidad"`

	// Recipe path
	DetallesReceta []recetaLineaReq `json:"DetallesReceta"`
}

// CrearMenu -> POST /menus/crear
func (mc *MenuController) CrearMenu(c *gin.Context) {
	var req crearMenuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var menu models.MenuItem
	var receta *models.Recipe

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		var cat models.MenuCategory
		if err := tx.First(&cat, "code = ?", req.MenuCategoriaCodigo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("categoría %s no encontrada", req.MenuCategoriaCodigo)
			}
			return err
		}

		menuCode, err := utils.NextCode(tx, "menus", "code", models.CodePrefixMenuItem)
		if err != nil {
			return err
		}
		menu = models.MenuItem{
			Code:         menuCode,
			Name:         req.MenuPlatos,
			Description:  req.MenuDescripcion,
			Price:        req.MenuPrecio,
			Prepared:     req.MenuEsPreparado,
			Active:       true,
			ImageURL:     req.MenuImageUrl,
			CategoryCode: cat.Code,
		}

		switch req.MenuEsPreparado {
		case models.PreparedDirect:
			// The sellable unit IS the insumo: create it and bind it.
			if req.InsumoUnidadMedida == "" || req.InsumoStockActual == nil || req.InsumoCompraUnidad == nil {
				return errors.New("un menú directo requiere InsumoUnidadMedida, InsumoStockActual e InsumoCompraUnidad")
			}
			insumoCode, err := utils.NextCode(tx, "insumos", "code", models.CodePrefixIngredient)
			if err != nil {
				return err
			}
			insumo := models.Ingredient{
				Code:     insumoCode,
				Name:     req.MenuPlatos,
				Unit:     req.InsumoUnidadMedida,
				Stock:    *req.InsumoStockActual,
				UnitCost: *req.InsumoCompraUnidad,
			}
			if err := tx.Create(&insumo).Error; err != nil {
				return err
			}
			menu.IngredientCode = &insumo.Code
			return tx.Create(&menu).Error

		case models.PreparedRecipe:
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
			recetaCode, err := utils.NextCode(tx, "recetas", "code", models.CodePrefixRecipe)
			if err != nil {
				return err
			}
			receta = &models.Recipe{Code: recetaCode, MenuItemCode: menu.Code}
			if err := tx.Create(receta).Error; err != nil {
				return err
			}
			for _, d := range req.DetallesReceta {
				var insumo models.Ingredient
				if err := tx.First(&insumo, "code = ?", d.InsumoCodigo).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("insumo %s no encontrado", d.InsumoCodigo)
					}
					return err
				}
				line := models.RecipeLine{
					RecipeCode:     receta.Code,
					IngredientCode: insumo.Code,
					Quantity:       d.Cantidad,
				}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
			}
			return nil

		default:
			return fmt.Errorf("MenuEsPreparado inválido: %q (se espera 'A' o 'I')", req.MenuEsPreparado)
		}
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	mc.Notifier.MenusChanged()

	data := gin.H{"MenuCodigoCreado": menu.Code}
	if receta != nil {
		data["RecetaCodigoCreado"] = receta.Code
	}
	utils.RespondJSON(c, http.StatusCreated, "Menú creado correctamente", data)
}

// ListaMenus -> GET /menus/lista
func (mc *MenuController) ListaMenus(c *gin.Context) {
	var menus []models.MenuItem
	if err := mc.DB.Preload("Category").Preload("Ingredient").Order("code asc").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de menús", menus)
}

// ObtenerMenu -> GET /menus/obtener/:MenuCodigo
// Returns the item together with its receta detail when it has one.
func (mc *MenuController) ObtenerMenu(c *gin.Context) {
	menuCodigo := c.Param("MenuCodigo")

	var menu models.MenuItem
	if err := mc.DB.Preload("Category").Preload("Ingredient").First(&menu, "code = ?", menuCodigo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menú no encontrado"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	data := gin.H{"Menu": menu}
	if menu.Prepared == models.PreparedRecipe {
		var receta models.Recipe
		if err := mc.DB.Preload("Lines.Ingredient").First(&receta, "menu_item_code = ?", menu.Code).Error; err == nil {
			data["Receta"] = receta
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Detalle del menú", data)
}

// ActualizarMenu -> PUT /menus/actualizar/:MenuCodigo
// Updates the general fields; for recipe items a non-nil DetallesReceta
// replaces the receta lines wholesale.
func (mc *MenuController) ActualizarMenu(c *gin.Context) {
	menuCodigo := c.Param("MenuCodigo")

	var req struct {
		MenuPlatos      *string          `json:"MenuPlatos"`
		MenuDescripcion *string          `json:"MenuDescripcion"`
		MenuPrecio      *float64         `json:"MenuPrecio"`
		MenuEstado      *bool            `json:"MenuEstado"`
		MenuImageUrl    *string          `json:"MenuImageUrl"`
		DetallesReceta  []recetaLineaReq `json:"DetallesReceta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		var menu models.MenuItem
		if err := tx.First(&menu, "code = ?", menuCodigo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("menú no encontrado")
			}
			return err
		}

		if req.MenuPlatos != nil {
			menu.Name = *req.MenuPlatos
		}
		if req.MenuDescripcion != nil {
			menu.Description = *req.MenuDescripcion
		}
		if req.MenuPrecio != nil {
			if *req.MenuPrecio <= 0 {
				return errors.New("MenuPrecio debe ser mayor que cero")
			}
			menu.Price = *req.MenuPrecio
		}
		if req.MenuEstado != nil {
			menu.Active = *req.MenuEstado
		}
		if req.MenuImageUrl != nil {
			menu.ImageURL = req.MenuImageUrl
		}
		if err := tx.Save(&menu).Error; err != nil {
			return err
		}

		if req.DetallesReceta != nil && menu.Prepared == models.PreparedRecipe {
			var receta models.Recipe
			if err := tx.First(&receta, "menu_item_code = ?", menu.Code).Error; err != nil {
				return err
			}
			if err := tx.Where("recipe_code = ?", receta.Code).Delete(&models.RecipeLine{}).Error; err != nil {
				return err
			}
			for _, d := range req.DetallesReceta {
				line := models.RecipeLine{
					RecipeCode:     receta.Code,
					IngredientCode: d.InsumoCodigo,
					Quantity:       d.Cantidad,
				}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	mc.Notifier.MenusChanged()
	utils.RespondJSON(c, http.StatusOK, "Menú actualizado correctamente", nil)
}

// EliminarMenu -> DELETE /menus/eliminar/:MenuCodigo
func (mc *MenuController) EliminarMenu(c *gin.Context) {
	menuCodigo := c.Param("MenuCodigo")

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		var menu models.MenuItem
		if err := tx.First(&menu, "code = ?", menuCodigo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("menú no encontrado")
			}
			return err
		}
		if menu.Prepared == models.PreparedRecipe {
			var receta models.Recipe
			if err := tx.First(&receta, "menu_item_code = ?", menu.Code).Error; err == nil {
				if err := tx.Where("recipe_code = ?", receta.Code).Delete(&models.RecipeLine{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&receta).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&menu).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.Notifier.MenusChanged()
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Menú %s eliminado correctamente", menuCodigo), nil)
}
