package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmontero22c/BRM-Backend/internal/core/cache"
	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

const productCacheTTL = 5 * time.Minute

func productKey(id uint) string { return fmt.Sprintf("product:%d", id) }

type ProductService struct {
	products  domain.ProductRepository
	purchases domain.PurchaseRepository
	cache     *cache.Cache // 可为 nil（未配置 redis）
}

func NewProductService(products domain.ProductRepository, purchases domain.PurchaseRepository, c *cache.Cache) *ProductService {
	return &ProductService{products: products, purchases: purchases, cache: c}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	ps, err := s.products.List(ctx)
	if err != nil {
		return nil, domain.Internal("list products failed", err)
	}
	return ps, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	var (
		p   *domain.Product
		err error
	)
	if s.cache != nil {
		p, err = cache.GetOrLoadJSON[domain.Product](s.cache, ctx, productKey(id), productCacheTTL,
			func(ctx context.Context) (*domain.Product, error) {
				return s.products.FindByID(ctx, id)
			})
	} else {
		p, err = s.products.FindByID(ctx, id)
	}
	if err != nil {
		return nil, domain.Internal("db error", err)
	}
	if p == nil {
		return nil, domain.NotFound("Producto no encontrado")
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in *validate.ProductInput) (*domain.Product, error) {
	if msg := validate.Product(in); msg != "" {
		return nil, domain.Validation(msg)
	}
	lot := strings.TrimSpace(*in.LotNumber)

	existing, err := s.products.FindByLot(ctx, lot)
	if err != nil {
		return nil, domain.Internal("db error", err)
	}
	if existing != nil {
		return nil, domain.Conflict("El número de lote ya existe")
	}

	date, _ := validate.ParseDate(*in.IntakeDate)
	p := &domain.Product{
		LotNumber:  lot,
		Name:       strings.TrimSpace(*in.Name),
		Price:      *in.Price,
		Quantity:   int(*in.Quantity),
		IntakeDate: date,
	}
	if err := s.products.Create(ctx, p); err != nil {
		if isDupKey(err) {
			return nil, domain.Conflict("El número de lote ya existe")
		}
		return nil, domain.Internal("create product failed", err)
	}
	// Get 会把“不存在”也缓存成 null；该 id 现在有货了，得把它清掉
	s.invalidate(ctx, p.ID)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in *validate.ProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("db error", err)
	}
	if p == nil {
		return nil, domain.NotFound("Producto no encontrado")
	}
	if msg := validate.ProductUpdate(in); msg != "" {
		return nil, domain.Validation(msg)
	}

	// 换批号要先确认不和别的商品撞
	if in.LotNumber != nil {
		lot := strings.TrimSpace(*in.LotNumber)
		if lot != p.LotNumber {
			other, err := s.products.FindByLot(ctx, lot)
			if err != nil {
				return nil, domain.Internal("db error", err)
			}
			if other != nil && other.ID != p.ID {
				return nil, domain.Conflict("El número de lote ya existe")
			}
		}
		p.LotNumber = lot
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		p.Quantity = int(*in.Quantity)
	}
	if in.IntakeDate != nil {
		date, _ := validate.ParseDate(*in.IntakeDate)
		p.IntakeDate = date
	}

	if err := s.products.Update(ctx, p); err != nil {
		if isDupKey(err) {
			return nil, domain.Conflict("El número de lote ya existe")
		}
		return nil, domain.Internal("update product failed", err)
	}
	s.invalidate(ctx, p.ID)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return domain.Internal("db error", err)
	}
	if p == nil {
		return domain.NotFound("Producto no encontrado")
	}

	// 有历史购买明细引用的商品不允许删，保住价格快照的可追溯性
	refs, err := s.purchases.CountLinesByProduct(ctx, id)
	if err != nil {
		return domain.Internal("db error", err)
	}
	if refs > 0 {
		return domain.Conflict("El producto tiene compras asociadas y no puede ser eliminado")
	}

	rows, err := s.products.Delete(ctx, id)
	if err != nil {
		return domain.Internal("delete product failed", err)
	}
	if rows == 0 {
		return domain.NotFound("Producto no encontrado")
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id uint) {
	if s.cache != nil {
		s.cache.Del(ctx, productKey(id))
	}
}
